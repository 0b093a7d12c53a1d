package rules

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/GDVFox/ladderlogic/ladder"
	"github.com/GDVFox/ladderlogic/ladder/dialect"
	"github.com/GDVFox/ladderlogic/ladder_node/api/common"
	"github.com/GDVFox/ladderlogic/util/httplib"
)

// ConvertRequest запрос на пакетное преобразование правил.
type ConvertRequest struct {
	Platform string   `json:"platform"`
	Lines    []string `json:"lines"`
}

// LineOutcome результат преобразования одной строки.
// Block и Error взаимоисключающие: ошибочная строка не дает частичного вывода.
type LineOutcome struct {
	Line  int    `json:"line"`
	Block string `json:"block,omitempty"`
	Error string `json:"error,omitempty"`
}

// ConvertResponse ответ с результатами по строкам в порядке входа
// и готовым текстом из успешных блоков.
type ConvertResponse struct {
	Results []LineOutcome `json:"results"`
	Text    string        `json:"text"`
}

// Convert выполняет пакетное преобразование строк правил.
// Ошибка в отдельной строке не прерывает обработку остальных.
func Convert(r *http.Request) (*httplib.Response, error) {
	req := &ConvertRequest{}
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		return httplib.NewBadRequestResponse(httplib.NewErrorBody(common.BadUnmarshalRequestErrorCode, err.Error())), nil
	}
	if len(req.Lines) == 0 {
		return httplib.NewBadRequestResponse(httplib.NewErrorBody(common.EmptyLinesErrorCode, "lines must be not empty")), nil
	}

	d, ok := dialect.ByName(req.Platform)
	if !ok {
		return httplib.NewNotFoundResponse(httplib.NewErrorBody(common.BadPlatformErrorCode, "unknown platform "+req.Platform)), nil
	}

	results := ladder.Convert(req.Lines, d)
	resp := &ConvertResponse{
		Results: make([]LineOutcome, 0, len(results)),
	}
	blocks := make([]string, 0, len(results))
	for _, res := range results {
		outcome := LineOutcome{Line: res.Line}
		if res.Err != nil {
			outcome.Error = res.Err.Error()
		} else {
			outcome.Block = res.Block
			blocks = append(blocks, res.Block)
		}
		resp.Results = append(resp.Results, outcome)
	}
	resp.Text = strings.Join(blocks, "\n\n")

	body, err := json.Marshal(resp)
	if err != nil {
		return nil, err
	}

	return httplib.NewOKResponse(body, httplib.ContentTypeJSON), nil
}
