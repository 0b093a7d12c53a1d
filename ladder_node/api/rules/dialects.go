package rules

import (
	"encoding/json"
	"net/http"

	"github.com/GDVFox/ladderlogic/ladder/dialect"
	"github.com/GDVFox/ladderlogic/util/httplib"
)

// DialectList список поддерживаемых платформ.
type DialectList struct {
	Dialects []string `json:"dialects"`
}

// ListDialects возвращает имена поддерживаемых платформ.
func ListDialects(r *http.Request) (*httplib.Response, error) {
	list := &DialectList{Dialects: dialect.Names()}

	body, err := json.Marshal(list)
	if err != nil {
		return nil, err
	}

	return httplib.NewOKResponse(body, httplib.ContentTypeJSON), nil
}
