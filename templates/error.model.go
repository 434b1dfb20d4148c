package templates

type ErrorTemplateModel struct {
	ErrorCode int
	ErrorMessage string
}
