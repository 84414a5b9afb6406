package sessions

import (
	"errors"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"

	"github.com/ADAPortal/models"
)

var (
	ErrNotFound = errors.New("session not found")
	ErrExpired  = errors.New("session expired")
)

// Store keeps the gateway's session rows and the per-session set of
// acknowledged review notifications. It satisfies workflow.AckStore.
type Store struct {
	db   *goqu.Database
	idle time.Duration
}

func NewStore(db *goqu.Database, idle time.Duration) *Store {
	return &Store{db: db, idle: idle}
}

// Create opens a session wrapping the upstream token.
func (s *Store) Create(userID int, username, upstreamToken string) (models.Session, error) {
	session := models.Session{
		Session_ID:     uuid.NewString(),
		User_ID:        userID,
		Username:       username,
		Upstream_Token: upstreamToken,
		Last_Activity:  time.Now().UTC(),
	}

	insert := s.db.Insert("portal_session").Rows(session).Executor()
	if _, err := insert.Exec(); err != nil {
		return models.Session{}, err
	}
	return session, nil
}

func (s *Store) Get(sessionID string) (models.Session, error) {
	var session models.Session
	found, err := s.db.From("portal_session").
		Select("*").
		Where(goqu.C("session_id").Eq(sessionID)).
		ScanStruct(&session)
	if err != nil {
		return models.Session{}, err
	}
	if !found {
		return models.Session{}, ErrNotFound
	}
	return session, nil
}

// Touch enforces the inactivity timeout and stamps new activity. A
// session idle longer than the configured window is destroyed and
// ErrExpired returned; the caller maps that to a timeout redirect.
func (s *Store) Touch(sessionID string) (models.Session, error) {
	session, err := s.Get(sessionID)
	if err != nil {
		return models.Session{}, err
	}

	now := time.Now().UTC()
	if now.Sub(session.Last_Activity) > s.idle {
		if err := s.Delete(sessionID); err != nil {
			return models.Session{}, err
		}
		return models.Session{}, ErrExpired
	}

	update := s.db.Update("portal_session").
		Set(goqu.Record{"last_activity": now}).
		Where(goqu.C("session_id").Eq(sessionID)).
		Executor()
	if _, err := update.Exec(); err != nil {
		return models.Session{}, err
	}

	session.Last_Activity = now
	return session, nil
}

// Delete removes the session; acknowledged notification rows cascade.
func (s *Store) Delete(sessionID string) error {
	del := s.db.Delete("portal_session").
		Where(goqu.C("session_id").Eq(sessionID)).
		Executor()
	_, err := del.Exec()
	return err
}

// NotifiedIDs returns the update IDs already acknowledged in this
// session.
func (s *Store) NotifiedIDs(sessionID string) (map[int]bool, error) {
	var ids []int
	err := s.db.From("session_notification").
		Select("update_id").
		Where(goqu.C("session_id").Eq(sessionID)).
		ScanVals(&ids)
	if err != nil {
		return nil, err
	}

	seen := make(map[int]bool, len(ids))
	for _, id := range ids {
		seen[id] = true
	}
	return seen, nil
}

// MarkNotified acknowledges update IDs for the session. Re-marking an
// already acknowledged ID is a no-op.
func (s *Store) MarkNotified(sessionID string, updateIDs ...int) error {
	if len(updateIDs) == 0 {
		return nil
	}

	rows := make([]interface{}, 0, len(updateIDs))
	for _, id := range updateIDs {
		rows = append(rows, goqu.Record{"session_id": sessionID, "update_id": id})
	}

	insert := s.db.Insert("session_notification").
		Rows(rows...).
		OnConflict(goqu.DoNothing()).
		Executor()
	_, err := insert.Exec()
	return err
}
