package repositories

import (
	"sync"
	"time"

	"wayfare/internal/models/trip_models"
	"wayfare/pkg/utils"
)

// Session is the ephemeral per-device state: everything the client keeps in
// memory between reloads. It dies with the process (or the TTL); only the
// settings row survives.
type Session struct {
	RegionID string
	Entries  []trip_models.ItineraryEntry
	Weather  *trip_models.Weather

	// ErrorMessage is the single transient error slot. errorSeq tracks
	// overwrites so a scheduled clear never wipes a newer message.
	ErrorMessage string
	errorSeq     uint64

	// DownloadedRegions records completed offline packs for this session.
	DownloadedRegions map[string]bool
}

type sessionEntry struct {
	session   *Session
	expiresAt time.Time
}

type SessionStore interface {
	// Snapshot returns a copy of the device's session, creating an empty
	// one on first touch.
	Snapshot(deviceID string) Session

	// Update runs fn against the device's session under the store lock.
	// fn returning an error leaves any prior state visible to it in place
	// only if fn did not mutate; mutators must fail before touching state.
	Update(deviceID string, fn func(s *Session) error) error

	// SetTransientError overwrites the error slot and schedules the
	// self-clear. A newer message cancels an older message's clear.
	SetTransientError(deviceID string, message string)

	// Drop forgets a device's session outright.
	Drop(deviceID string)
}

type sessionStore struct {
	mu         sync.RWMutex
	data       map[string]*sessionEntry
	ttl        time.Duration
	delayer    utils.Delayer
	clearAfter time.Duration
}

func NewSessionStore(ttl time.Duration, clearAfter time.Duration, delayer utils.Delayer) SessionStore {
	return &sessionStore{
		data:       make(map[string]*sessionEntry),
		ttl:        ttl,
		clearAfter: clearAfter,
		delayer:    delayer,
	}
}

// get assumes the caller holds the write lock.
func (s *sessionStore) get(deviceID string) *Session {
	e, ok := s.data[deviceID]
	if !ok || time.Now().After(e.expiresAt) {
		e = &sessionEntry{session: &Session{
			Entries:           []trip_models.ItineraryEntry{},
			DownloadedRegions: make(map[string]bool),
		}}
	}
	e.expiresAt = time.Now().Add(s.ttl)
	s.data[deviceID] = e
	return e.session
}

func (s *sessionStore) Snapshot(deviceID string) Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.get(deviceID)
	out := *sess
	out.Entries = make([]trip_models.ItineraryEntry, len(sess.Entries))
	copy(out.Entries, sess.Entries)
	if sess.Weather != nil {
		w := *sess.Weather
		out.Weather = &w
	}
	out.DownloadedRegions = make(map[string]bool, len(sess.DownloadedRegions))
	for k, v := range sess.DownloadedRegions {
		out.DownloadedRegions[k] = v
	}
	return out
}

func (s *sessionStore) Update(deviceID string, fn func(sess *Session) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.get(deviceID))
}

func (s *sessionStore) SetTransientError(deviceID string, message string) {
	s.mu.Lock()
	sess := s.get(deviceID)
	sess.ErrorMessage = message
	sess.errorSeq++
	seq := sess.errorSeq
	s.mu.Unlock()

	s.delayer.After(s.clearAfter, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		cur := s.get(deviceID)
		if cur.errorSeq == seq {
			cur.ErrorMessage = ""
		}
	})
}

func (s *sessionStore) Drop(deviceID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, deviceID)
}
