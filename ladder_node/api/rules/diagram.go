package rules

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/goccy/go-graphviz"
	"github.com/goccy/go-graphviz/cgraph"

	"github.com/GDVFox/ladderlogic/ladder/dialect"
	"github.com/GDVFox/ladderlogic/ladder/rung"
	"github.com/GDVFox/ladderlogic/ladder_node/api/common"
	"github.com/GDVFox/ladderlogic/util/httplib"
)

// DiagramRequest запрос на построение схемы контактной сети одного правила.
type DiagramRequest struct {
	Platform string `json:"platform"`
	Line     string `json:"line"`
}

// Diagram возвращает svg-изображение контактной сети звена:
// параллельные ветви между шинами питания и действия у правой шины.
func Diagram(r *http.Request) (*httplib.Response, error) {
	req := &DiagramRequest{}
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		return httplib.NewBadRequestResponse(httplib.NewErrorBody(common.BadUnmarshalRequestErrorCode, err.Error())), nil
	}

	d, ok := dialect.ByName(req.Platform)
	if !ok {
		return httplib.NewNotFoundResponse(httplib.NewErrorBody(common.BadPlatformErrorCode, "unknown platform "+req.Platform)), nil
	}

	builtRung, err := buildRung(req.Line)
	if err != nil {
		return httplib.NewBadRequestResponse(httplib.NewErrorBody(common.BadRuleErrorCode, err.Error())), nil
	}

	img, err := buildGraph(builtRung, d)
	if err != nil {
		return httplib.NewInternalErrorResponse(httplib.NewErrorBody(common.RenderGraphErrorCode, err.Error())), nil
	}

	return httplib.NewOKResponse(img, httplib.ContentTypeSVG), nil
}

func buildGraph(ru *rung.Rung, d *dialect.Dialect) ([]byte, error) {
	g := graphviz.New()
	graph, err := g.Graph(graphviz.Directed)
	if err != nil {
		return nil, err
	}
	graph.SetRankDir(cgraph.LRRank)

	leftRail, err := graph.CreateNode("rail_left")
	if err != nil {
		return nil, err
	}
	leftRail.SetShape(cgraph.RectangleShape)
	leftRail.SetLabel("|")

	rightRail, err := graph.CreateNode("rail_right")
	if err != nil {
		return nil, err
	}
	rightRail.SetShape(cgraph.RectangleShape)
	rightRail.SetLabel("|")

	for groupIndex, group := range ru.Groups {
		prev := leftRail
		for termIndex := range group.Terms {
			term := &group.Terms[termIndex]

			contact, err := graph.CreateNode(fmt.Sprintf("contact_%d_%d", groupIndex, termIndex))
			if err != nil {
				return nil, err
			}
			contact.SetShape(cgraph.RectangleShape)
			contact.SetLabel(contactLabel(term, d))
			if term.Negated {
				contact.SetColor("red")
			}

			if _, err := graph.CreateEdge(fmt.Sprintf("e_%d_%d", groupIndex, termIndex), prev, contact); err != nil {
				return nil, err
			}
			prev = contact
		}

		if _, err := graph.CreateEdge(fmt.Sprintf("e_%d_end", groupIndex), prev, rightRail); err != nil {
			return nil, err
		}
	}

	for actionIndex, action := range ru.Actions {
		actionNode, err := graph.CreateNode(fmt.Sprintf("action_%d", actionIndex))
		if err != nil {
			return nil, err
		}
		actionNode.SetShape(cgraph.RectangleShape)
		actionNode.SetLabel(actionLabel(&action, d))
		actionNode.SetColor("green")

		if _, err := graph.CreateEdge(fmt.Sprintf("e_action_%d", actionIndex), rightRail, actionNode); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := g.Render(graph, graphviz.SVG, &buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func contactLabel(t *rung.Term, d *dialect.Dialect) string {
	marker := d.OpenContact
	if t.Negated {
		marker = d.ClosedContact
	}
	return marker + " " + t.Label()
}

func actionLabel(a *rung.Action, d *dialect.Dialect) string {
	switch a.Kind {
	case rung.CoilKind:
		return d.Coil + " " + a.Name
	case rung.TONKind, rung.TOFKind:
		return fmt.Sprintf(d.Timer, a.Kind, a.Name, a.Param)
	default:
		return fmt.Sprintf(d.Counter, a.Kind, a.Name, a.Param)
	}
}
