package rules

import (
	"encoding/json"
	"net/http"

	"github.com/GDVFox/ladderlogic/ladder/parser"
	"github.com/GDVFox/ladderlogic/ladder/recognizer"
	"github.com/GDVFox/ladderlogic/ladder/rung"
	"github.com/GDVFox/ladderlogic/ladder_node/api/common"
	"github.com/GDVFox/ladderlogic/util/httplib"
)

// RungRequest запрос на построение структуры звена по одной строке правила.
type RungRequest struct {
	Line string `json:"line"`
}

// BuildRung возвращает нормализованную структуру звена без привязки к диалекту.
func BuildRung(r *http.Request) (*httplib.Response, error) {
	req := &RungRequest{}
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		return httplib.NewBadRequestResponse(httplib.NewErrorBody(common.BadUnmarshalRequestErrorCode, err.Error())), nil
	}

	builtRung, err := buildRung(req.Line)
	if err != nil {
		return httplib.NewBadRequestResponse(httplib.NewErrorBody(common.BadRuleErrorCode, err.Error())), nil
	}

	body, err := json.Marshal(builtRung)
	if err != nil {
		return nil, err
	}

	return httplib.NewOKResponse(body, httplib.ContentTypeJSON), nil
}

func buildRung(line string) (*rung.Rung, error) {
	analyzer := parser.NewSyntaxAnalyzer(recognizer.NewLexicalRecognizer(line))
	statement, err := analyzer.Parse()
	if err != nil {
		return nil, err
	}

	return rung.NewBuilder(statement).Build()
}
