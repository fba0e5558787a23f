package communications

import (
	"testing"

	"gemrush.io/backend/games"
	"gemrush.io/backend/responses"
)

func TestNewCoversAllGames(t *testing.T) {
	m := New()

	for _, id := range games.AllGames() {
		if _, ok := m.SubscriptionsGames[id]; !ok {
			t.Errorf("no subscription bucket for %s", id)
		}
	}
}

func TestPropagateRoundReachesGameSubscriber(t *testing.T) {
	m := New()
	feed := make(chan Broadcast, 1)

	m.ProcessEvent(ManagerEvent{
		Type: SubscribeFeed,
		Body: ManagerEventSubscribeFeed{Id: "sub-1", Feed: feed},
	})
	m.ProcessEvent(ManagerEvent{
		Type: SubscribeGame,
		Body: ManagerEventSubscribeGame{Id: "sub-1", Game: games.Wheel},
	})

	round := responses.Round{Game: "wheel", Class: "even_money"}
	m.ProcessEvent(ManagerEvent{Type: PropagateRound, Body: round})

	select {
	case got := <-feed:
		if got.Type != NewRound {
			t.Errorf("unexpected broadcast type %d", got.Type)
		}
		body := got.Body.(responses.Round)
		if body.Class != "even_money" {
			t.Errorf("unexpected round class %q", body.Class)
		}
	default:
		t.Fatal("no broadcast delivered")
	}
}

func TestPropagateRoundSkipsOtherGames(t *testing.T) {
	m := New()
	feed := make(chan Broadcast, 1)

	m.ProcessEvent(ManagerEvent{
		Type: SubscribeFeed,
		Body: ManagerEventSubscribeFeed{Id: "sub-1", Feed: feed},
	})
	m.ProcessEvent(ManagerEvent{
		Type: SubscribeGame,
		Body: ManagerEventSubscribeGame{Id: "sub-1", Game: games.Wheel},
	})

	m.ProcessEvent(ManagerEvent{Type: PropagateRound, Body: responses.Round{Game: "reel"}})

	select {
	case <-feed:
		t.Fatal("broadcast delivered for an unsubscribed game")
	default:
	}
}

func TestSubscribeAllRounds(t *testing.T) {
	m := New()
	feed := make(chan Broadcast, len(games.AllGames()))

	m.ProcessEvent(ManagerEvent{
		Type: SubscribeFeed,
		Body: ManagerEventSubscribeFeed{Id: "sub-1", Feed: feed},
	})
	m.ProcessEvent(ManagerEvent{
		Type: SubscribeAllRounds,
		Body: ManagerEventSubscribeAllRounds{Id: "sub-1"},
	})

	for _, id := range games.AllGames() {
		m.ProcessEvent(ManagerEvent{Type: PropagateRound, Body: responses.Round{Game: id.String()}})
	}

	if len(feed) != len(games.AllGames()) {
		t.Errorf("expected %d broadcasts, got %d", len(games.AllGames()), len(feed))
	}
}

func TestUnsubscribeFeedDropsAllSubscriptions(t *testing.T) {
	m := New()
	feed := make(chan Broadcast, 1)

	m.ProcessEvent(ManagerEvent{
		Type: SubscribeFeed,
		Body: ManagerEventSubscribeFeed{Id: "sub-1", Feed: feed},
	})
	m.ProcessEvent(ManagerEvent{
		Type: SubscribeAllRounds,
		Body: ManagerEventSubscribeAllRounds{Id: "sub-1"},
	})
	m.ProcessEvent(ManagerEvent{
		Type: UnsubscribeFeed,
		Body: ManagerEventUnsubscribeFeed{Id: "sub-1"},
	})

	m.ProcessEvent(ManagerEvent{Type: PropagateRound, Body: responses.Round{Game: "wheel"}})

	select {
	case <-feed:
		t.Fatal("broadcast delivered after unsubscribe")
	default:
	}
	if _, ok := m.Feeds["sub-1"]; ok {
		t.Error("feed still registered after unsubscribe")
	}
}

func TestResubscribeFeedResetsGameSubscriptions(t *testing.T) {
	m := New()
	oldFeed := make(chan Broadcast, 1)
	newFeed := make(chan Broadcast, 1)

	m.ProcessEvent(ManagerEvent{
		Type: SubscribeFeed,
		Body: ManagerEventSubscribeFeed{Id: "sub-1", Feed: oldFeed},
	})
	m.ProcessEvent(ManagerEvent{
		Type: SubscribeGame,
		Body: ManagerEventSubscribeGame{Id: "sub-1", Game: games.Wheel},
	})
	m.ProcessEvent(ManagerEvent{
		Type: SubscribeFeed,
		Body: ManagerEventSubscribeFeed{Id: "sub-1", Feed: newFeed},
	})

	m.ProcessEvent(ManagerEvent{Type: PropagateRound, Body: responses.Round{Game: "wheel"}})

	if len(oldFeed) != 0 || len(newFeed) != 0 {
		t.Error("game subscription survived feed replacement")
	}
}
