package common

// Возможные коды ошибок.
var (
	BadUnmarshalRequestErrorCode = "bad_unmarshal"
	BadPlatformErrorCode         = "bad_platform"
	BadRuleErrorCode             = "bad_rule"
	EmptyLinesErrorCode          = "empty_lines"
	RenderGraphErrorCode         = "render_graph_error"
)
