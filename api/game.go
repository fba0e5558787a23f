package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/shopspring/decimal"

	"gemrush.io/backend/communications"
	"gemrush.io/backend/db"
	"gemrush.io/backend/engine"
	"gemrush.io/backend/games"
	"gemrush.io/backend/ledger"
	"gemrush.io/backend/requests"
	"gemrush.io/backend/responses"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

func (c *SharedController) Play(context *gin.Context) {
	userID, ok := authUserID(context)
	if !ok {
		errorResponse(context, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var play requests.Play
	if err := context.BindJSON(&play); err != nil {
		slog.Error("Parsing play request error", "err", err)
		errorResponse(context, http.StatusBadRequest, err.Error())
		return
	}

	gameID, err := games.ParseGameID(play.Game)
	if err != nil {
		errorResponse(context, http.StatusBadRequest, err.Error())
		return
	}

	outcome, err := c.Engine.Execute(userID, gameID, play.Wager, string(play.Params))
	if err != nil {
		switch {
		case errors.Is(err, engine.ErrInvalidWager),
			errors.Is(err, engine.ErrInvalidParameters):
			errorResponse(context, http.StatusBadRequest, err.Error())
		case errors.Is(err, ledger.ErrInsufficientCredits):
			errorResponse(context, http.StatusPaymentRequired, err.Error())
		case errors.Is(err, engine.ErrGameAlreadyInProgress):
			errorResponse(context, http.StatusConflict, err.Error())
		default:
			errorResponse(context, http.StatusInternalServerError, err.Error())
		}
		return
	}

	c.broadcastRound(userID, play.Wager, outcome)

	okResponse(context, outcome)
}

// broadcastRound pushes a settled round onto the live feed.
func (c *SharedController) broadcastRound(userID uint, wager decimal.Decimal, outcome games.Outcome) {
	var user db.User
	if err := c.Db.Where("id = ?", userID).First(&user).Error; err != nil {
		slog.Error("User not found for broadcast", "userId", userID, "err", err)
	}

	detail, _ := json.Marshal(outcome.Detail)
	round := responses.Round{
		Timestamp:  time.Now(),
		Game:       outcome.Game.String(),
		Wager:      wager,
		Class:      outcome.Class,
		Multiplier: outcome.Multiplier,
		Payout:     outcome.Payout,
		Detail:     string(detail),
		UserID:     userID,
		Username:   user.Username,
	}

	c.Manager.ManagerReceiver <- communications.ManagerEvent{
		Type: communications.PropagateRound,
		Body: round,
	}
}

func (c *SharedController) GameList(context *gin.Context) {
	ids := games.AllGames()
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = id.String()
	}
	okResponse(context, names)
}

func (c *SharedController) GamePaytable(context *gin.Context) {
	gameID, err := games.ParseGameID(context.Param("gameName"))
	if err != nil {
		errorResponse(context, http.StatusBadRequest, err.Error())
		return
	}
	okResponse(context, games.Paytable(gameID))
}

func WebsocketsReader(conn *websocket.Conn, channel chan requests.WSRequest) {
	defer close(channel)
	for {
		message := requests.WSRequest{}
		err := conn.ReadJSON(&message)
		if err != nil {
			slog.Error("Error while reading message", "err", err)
			break
		}
		channel <- message
	}
}

func WebsocketsHandler(c *gin.Context, sCtrl *SharedController) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		slog.Error("Upgrade failed", "err", err)
		return
	}
	readerChannel := make(chan requests.WSRequest)
	go WebsocketsReader(conn, readerChannel)

	managerFeed := make(chan communications.Broadcast)
	UUID := uuid.New()
	conn.WriteJSON(&responses.WSResponse{Id: 0, Data: UUID})

	sCtrl.Manager.ManagerReceiver <- communications.ManagerEvent{
		Type: communications.SubscribeFeed,
		Body: communications.ManagerEventSubscribeFeed{
			Id:   UUID.String(),
			Feed: managerFeed,
		},
	}

	slog.Info("Connected", "conn", conn.RemoteAddr())

	defer func() {
		conn.Close()
		sCtrl.Manager.ManagerReceiver <- communications.ManagerEvent{
			Type: communications.UnsubscribeFeed,
			Body: communications.ManagerEventUnsubscribeFeed{
				Id: UUID.String(),
			},
		}
	}()

	for {
		message := requests.WSRequest{}
		select {
		case broadcast := <-managerFeed:
			conn.WriteJSON(broadcast.Body)
			continue
		case recv, ok := <-readerChannel:
			if !ok {
				return
			}
			message = recv
		}

		response := responses.WSResponse{Id: message.Id}
		switch message.Method {
		case "subscribe_rounds", "unsubscribe_rounds":
			var names []string
			if err := json.Unmarshal(message.Data, &names); err != nil {
				slog.Error("Error parsing round subscription", "err", err)
				return
			}
			for _, name := range names {
				gameID, err := games.ParseGameID(name)
				if err != nil {
					slog.Error("Unknown game in subscription", "game", name)
					continue
				}
				if message.Method == "subscribe_rounds" {
					sCtrl.Manager.ManagerReceiver <- communications.ManagerEvent{
						Type: communications.SubscribeGame,
						Body: communications.ManagerEventSubscribeGame{
							Id:   UUID.String(),
							Game: gameID,
						},
					}
				} else {
					sCtrl.Manager.ManagerReceiver <- communications.ManagerEvent{
						Type: communications.UnsubscribeGame,
						Body: communications.ManagerEventUnsubscribeGame{
							Id:   UUID.String(),
							Game: gameID,
						},
					}
				}
			}
		case "subscribe_all_rounds":
			sCtrl.Manager.ManagerReceiver <- communications.ManagerEvent{
				Type: communications.SubscribeAllRounds,
				Body: communications.ManagerEventSubscribeAllRounds{
					Id: UUID.String(),
				},
			}
		case "unsubscribe_all_rounds":
			sCtrl.Manager.ManagerReceiver <- communications.ManagerEvent{
				Type: communications.UnsubscribeAllRounds,
				Body: communications.ManagerEventUnsubscribeAllRounds{
					Id: UUID.String(),
				},
			}
		case "get_uuid":
			response.Data = UUID
			conn.WriteJSON(&response)
		default:
		}
	}
}

func GameEndpoints(sCtrl *SharedController, router *gin.Engine) {
	router.POST("/game/play", AuthMiddleware(), sCtrl.Play)
	router.GET("/game/list", sCtrl.GameList)
	router.GET("/game/paytable/:gameName", sCtrl.GamePaytable)
	router.GET("/game/ws", func(c *gin.Context) { WebsocketsHandler(c, sCtrl) })
}
