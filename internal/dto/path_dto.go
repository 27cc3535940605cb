package dto

// IdParam validates a single ":id" path parameter.
type IdParam struct {
	Id string `validate:"required,uuid"`
}

// NoteTagParams validates the ":noteId/tags/:tagId" path parameters.
type NoteTagParams struct {
	NoteId string `validate:"required,uuid"`
	TagId  string `validate:"required,uuid"`
}

// PageQuery is the optional "?limit=&offset=&sort=" query of list endpoints.
// A zero Limit returns every row.
type PageQuery struct {
	Limit  int    `query:"limit" validate:"gte=0,lte=100"`
	Offset int    `query:"offset" validate:"gte=0"`
	Sort   string `query:"sort" validate:"omitempty,oneof=asc desc"`
}

func (p PageQuery) Descending() bool {
	return p.Sort == "desc"
}
