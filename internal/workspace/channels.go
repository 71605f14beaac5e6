package workspace

import (
	"strings"

	"go.uber.org/zap"

	"github.com/demogorgan123/Club/internal/access"
	"github.com/demogorgan123/Club/internal/apperr"
	"github.com/demogorgan123/Club/internal/models"
	"github.com/demogorgan123/Club/internal/realtime"
	"github.com/demogorgan123/Club/internal/store"
)

// PostMessage appends text to a channel. Whitespace-only text is rejected and
// nothing is stored.
func (s *Service) PostMessage(channelID, authorID, text string) (models.Message, error) {
	const op = "PostMessage"
	var msg models.Message
	err := s.update(op, func(tx *store.Tx) ([]realtime.Event, error) {
		if strings.TrimSpace(text) == "" {
			return nil, apperr.Validation(op, "message text is empty")
		}
		ch, err := tx.Channel(channelID)
		if err != nil {
			return nil, err
		}
		author, err := tx.User(authorID)
		if err != nil {
			return nil, err
		}
		if !access.CanPostTo(author, ch) {
			return nil, apperr.PermissionDenied(op, "user %q may not post in %q", author.ID, ch.ID)
		}
		at := s.now()
		msg = models.Message{
			ID:        s.freshID("msg", tx.HasMessage),
			ChannelID: ch.ID,
			Text:      text,
			UserID:    author.ID,
			Timestamp: at.Format(s.timeLayout),
			SentAt:    at,
		}
		if err := tx.AppendMessage(msg); err != nil {
			return nil, err
		}
		return []realtime.Event{created(realtime.KindMessage, msg.ID, ch.ID)}, nil
	})
	if err != nil {
		return models.Message{}, err
	}
	s.logger.Debug("message posted", zap.String("message_id", msg.ID), zap.String("channel_id", channelID))
	return msg, nil
}

// OpenOrCreateDirectChannel returns the direct channel between userA and
// userB, creating it on first use. The bool reports whether it was created.
func (s *Service) OpenOrCreateDirectChannel(userA, userB string) (models.Channel, bool, error) {
	const op = "OpenOrCreateDirectChannel"
	var (
		ch    models.Channel
		isNew bool
	)
	err := s.update(op, func(tx *store.Tx) ([]realtime.Event, error) {
		if userA == userB {
			return nil, apperr.Validation(op, "a direct channel needs two different users")
		}
		a, err := tx.User(userA)
		if err != nil {
			return nil, err
		}
		b, err := tx.User(userB)
		if err != nil {
			return nil, err
		}
		if existing, ok := tx.DirectChannel(a.ID, b.ID); ok {
			ch = existing
			return nil, nil
		}
		id := s.freshID("dm", func(id string) bool {
			_, err := tx.Channel(id)
			return err == nil
		})
		ch = models.Channel{
			ID:      id,
			Name:    a.Name + ", " + b.Name,
			Type:    models.ChannelDirect,
			Members: []string{a.ID, b.ID},
		}
		if err := tx.InsertChannel(ch); err != nil {
			return nil, err
		}
		isNew = true
		return []realtime.Event{created(realtime.KindChannel, ch.ID, "")}, nil
	})
	if err != nil {
		return models.Channel{}, false, err
	}
	if isNew {
		s.logger.Info("direct channel created", zap.String("channel_id", ch.ID), zap.Strings("members", ch.Members))
	}
	return ch, isNew, nil
}
