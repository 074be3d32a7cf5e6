package handler

import (
	"errors"
	"testing"
)

type fakeBoardConn struct {
	writes   [][]byte
	failNext bool
	closed   bool
}

func (f *fakeBoardConn) WriteMessage(messageType int, data []byte) error {
	if f.failNext {
		return errors.New("write failed")
	}
	f.writes = append(f.writes, data)
	return nil
}

func (f *fakeBoardConn) Close() error {
	f.closed = true
	return nil
}

func resetBoardClients(t *testing.T) {
	t.Helper()
	boardMu.Lock()
	boardClients = make(map[boardConn]bool)
	boardMu.Unlock()
}

func TestBroadcastPayload_OneCopyPerClient(t *testing.T) {
	resetBoardClients(t)

	a := &fakeBoardConn{}
	b := &fakeBoardConn{}
	boardMu.Lock()
	boardClients[a] = true
	boardClients[b] = true
	boardMu.Unlock()

	broadcastPayload([]byte(`{"orderNumber":"LOS-000001"}`))
	broadcastPayload([]byte(`{"orderNumber":"LOS-000002"}`))

	for name, conn := range map[string]*fakeBoardConn{"first": a, "second": b} {
		if len(conn.writes) != 2 {
			t.Errorf("%s client got %d writes, want 2", name, len(conn.writes))
		}
	}
}

func TestBroadcastPayload_EvictsFailedConn(t *testing.T) {
	resetBoardClients(t)

	healthy := &fakeBoardConn{}
	broken := &fakeBoardConn{failNext: true}
	boardMu.Lock()
	boardClients[healthy] = true
	boardClients[broken] = true
	boardMu.Unlock()

	broadcastPayload([]byte(`{}`))

	if !broken.closed {
		t.Error("failed connection was not closed")
	}
	boardMu.Lock()
	_, stillRegistered := boardClients[broken]
	count := len(boardClients)
	boardMu.Unlock()
	if stillRegistered {
		t.Error("failed connection still registered")
	}
	if count != 1 {
		t.Errorf("registered clients = %d, want 1", count)
	}

	broadcastPayload([]byte(`{}`))
	if len(healthy.writes) != 2 {
		t.Errorf("healthy client got %d writes, want 2", len(healthy.writes))
	}
}
