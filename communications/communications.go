package communications

import (
	"fmt"
	"log/slog"

	"gemrush.io/backend/games"
	"gemrush.io/backend/responses"
)

type BroadcastType int

const (
	NewRound BroadcastType = iota
)

type Broadcast struct {
	Type BroadcastType
	Body interface{}
}

type ManagerEventType int

const (
	SubscribeFeed ManagerEventType = iota
	UnsubscribeFeed
	SubscribeGame
	UnsubscribeGame
	SubscribeAllRounds
	UnsubscribeAllRounds
	PropagateRound
)

type ManagerEvent struct {
	Type ManagerEventType
	Body interface{}
}

type ManagerEventSubscribeFeed struct {
	Id   string
	Feed chan Broadcast
}
type ManagerEventUnsubscribeFeed struct {
	Id string
}
type ManagerEventSubscribeGame struct {
	Id   string
	Game games.GameID
}
type ManagerEventUnsubscribeGame struct {
	Id   string
	Game games.GameID
}
type ManagerEventSubscribeAllRounds struct {
	Id string
}
type ManagerEventUnsubscribeAllRounds struct {
	Id string
}

var ManagerPub *Manager

// Manager fans settled rounds out to websocket feeds. All state is
// owned by the Run goroutine; every mutation arrives as a
// ManagerEvent on ManagerReceiver.
type Manager struct {
	Feeds              map[string]chan Broadcast
	SubscriptionsGames map[games.GameID]map[string]bool
	ManagerReceiver    chan ManagerEvent
	Stop               chan bool
}

func New() *Manager {
	subscriptions := make(map[games.GameID]map[string]bool)
	for _, id := range games.AllGames() {
		subscriptions[id] = make(map[string]bool)
	}

	ManagerPub = &Manager{
		Feeds:              make(map[string]chan Broadcast),
		SubscriptionsGames: subscriptions,
		ManagerReceiver:    make(chan ManagerEvent),
		Stop:               make(chan bool),
	}
	return ManagerPub
}

func (m *Manager) Run() {
	slog.Info("Starting manager")
	for {
		select {
		case event := <-m.ManagerReceiver:
			m.ProcessEvent(event)
		case <-m.Stop:
			slog.Info("Manager exiting")
			return
		}
	}
}

func (m *Manager) propagateRound(round responses.Round) {
	id, err := games.ParseGameID(round.Game)
	if err != nil {
		slog.Error("Game not found", "game", round.Game)
		return
	}

	for sub := range m.SubscriptionsGames[id] {
		feed, ok := m.Feeds[sub]
		if !ok {
			slog.Error("Feed not found", "sub", sub)
			continue
		}
		feed <- Broadcast{Type: NewRound, Body: round}
	}
}

func (m *Manager) ProcessEvent(event ManagerEvent) {
	switch event.Type {
	case PropagateRound:
		round, ok := event.Body.(responses.Round)
		if !ok {
			panic(fmt.Sprintf("Cannot convert Round %#v", event))
		}
		m.propagateRound(round)
	case SubscribeFeed:
		sub, ok := event.Body.(ManagerEventSubscribeFeed)
		if !ok {
			panic(fmt.Sprintf("Cannot convert SubscribeFeed %#v", event))
		}
		if _, exists := m.Feeds[sub.Id]; exists {
			for _, subs := range m.SubscriptionsGames {
				delete(subs, sub.Id)
			}
		}
		m.Feeds[sub.Id] = sub.Feed
	case UnsubscribeFeed:
		sub, ok := event.Body.(ManagerEventUnsubscribeFeed)
		if !ok {
			panic(fmt.Sprintf("Cannot convert UnsubscribeFeed %#v", event))
		}
		for _, subs := range m.SubscriptionsGames {
			delete(subs, sub.Id)
		}
		delete(m.Feeds, sub.Id)
	case SubscribeGame:
		sub, ok := event.Body.(ManagerEventSubscribeGame)
		if !ok {
			panic(fmt.Sprintf("Cannot convert SubscribeGame %#v", event))
		}
		m.SubscriptionsGames[sub.Game][sub.Id] = true
	case UnsubscribeGame:
		sub, ok := event.Body.(ManagerEventUnsubscribeGame)
		if !ok {
			panic(fmt.Sprintf("Cannot convert UnsubscribeGame %#v", event))
		}
		delete(m.SubscriptionsGames[sub.Game], sub.Id)
	case SubscribeAllRounds:
		sub, ok := event.Body.(ManagerEventSubscribeAllRounds)
		if !ok {
			panic(fmt.Sprintf("Cannot convert SubscribeAllRounds %#v", event))
		}
		for _, subs := range m.SubscriptionsGames {
			subs[sub.Id] = true
		}
	case UnsubscribeAllRounds:
		sub, ok := event.Body.(ManagerEventUnsubscribeAllRounds)
		if !ok {
			panic(fmt.Sprintf("Cannot convert UnsubscribeAllRounds %#v", event))
		}
		for _, subs := range m.SubscriptionsGames {
			delete(subs, sub.Id)
		}
	default:
		panic(fmt.Sprintf("unexpected communications.ManagerEventType: %#v", event.Type))
	}
}
