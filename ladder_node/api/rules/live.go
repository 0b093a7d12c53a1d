package rules

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/GDVFox/ladderlogic/ladder"
	"github.com/GDVFox/ladderlogic/ladder/dialect"
	"github.com/GDVFox/ladderlogic/ladder_node/api/common"
	"github.com/GDVFox/ladderlogic/util"
	"github.com/GDVFox/ladderlogic/util/httplib"
)

const (
	writeWait = 10 * time.Second
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // мы уже прошли слой CORS
	},
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// Коды сообщений интерактивного преобразования.
const (
	blockMessageCode = "block"
	skipMessageCode  = "skip"
)

type socketMessage struct {
	Code string `json:"code"`
	Body string `json:"body"`
}

func newSocketMessage(c string, body string) []byte {
	sockMsg := &socketMessage{
		Code: c,
		Body: body,
	}
	data, err := json.Marshal(sockMsg)
	if err != nil {
		return nil
	}
	return data
}

// Live открывает интерактивное преобразование по websocket:
// каждое текстовое сообщение содержит одну строку правила,
// в ответ уходит готовый блок звена или описание ошибки.
func Live(w http.ResponseWriter, r *http.Request) error {
	logger := r.Context().Value(httplib.RequestLogger).(*util.Logger)

	platform := r.FormValue("platform")
	if platform == "" {
		resp := httplib.NewBadRequestResponse(httplib.NewErrorBody(common.BadPlatformErrorCode, "platform must be not empty"))
		return resp.WriteTo(w)
	}

	d, ok := dialect.ByName(platform)
	if !ok {
		resp := httplib.NewNotFoundResponse(httplib.NewErrorBody(common.BadPlatformErrorCode, "unknown platform "+platform))
		return resp.WriteTo(w)
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}

	go runConvertLoop(conn, d, logger.WithName("live loop"))
	return nil
}

func runConvertLoop(conn *websocket.Conn, d *dialect.Dialect, l *util.Logger) {
	defer conn.Close()
	defer conn.WriteMessage(websocket.CloseMessage, []byte{})

	for {
		messageType, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				l.Warnf("can not read rule line: %s", err)
			}
			return
		}
		if messageType != websocket.TextMessage {
			continue
		}

		line := string(data)
		var reply []byte
		if ladder.Skipped(line) {
			reply = newSocketMessage(skipMessageCode, "")
		} else if block, err := ladder.ConvertLine(line, d); err != nil {
			reply = newSocketMessage(common.BadRuleErrorCode, err.Error())
		} else {
			reply = newSocketMessage(blockMessageCode, block)
		}

		conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteMessage(websocket.TextMessage, reply); err != nil {
			l.Warnf("can not write conversion result: %s", err)
			return
		}
	}
}
