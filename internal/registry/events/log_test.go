package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	registrycontract "attestry/contracts/registry"
	"attestry/pkg/domain"
)

type LogSuite struct {
	suite.Suite
	log  *Log
	user domain.Address
}

func TestLogSuite(t *testing.T) {
	suite.Run(t, new(LogSuite))
}

func (s *LogSuite) SetupTest() {
	s.log = NewLog(WithSubscriberBuffer(4))
	var err error
	s.user, err = domain.ParseAddress("0x1111111111111111111111111111111111111111")
	s.Require().NoError(err)
}

func (s *LogSuite) appendKind(kind registrycontract.EventKind, user domain.Address) Event {
	return s.log.Append(Event{
		Kind:      kind,
		Timestamp: time.Now(),
		User:      user,
	})
}

func (s *LogSuite) TestAppend() {
	s.Run("assigns strictly increasing sequences starting at 1", func() {
		e1 := s.appendKind(registrycontract.EventCredentialAdded, s.user)
		e2 := s.appendKind(registrycontract.EventCredentialVerified, s.user)
		s.Equal(uint64(1), e1.Sequence)
		s.Equal(uint64(2), e2.Sequence)
		s.Equal(2, s.log.Len())
	})
}

func (s *LogSuite) TestList() {
	s.Run("returns events in append order", func() {
		s.appendKind(registrycontract.EventIssuerRegistered, s.user)
		s.appendKind(registrycontract.EventCredentialAdded, s.user)

		listed := s.log.List()
		s.Require().Len(listed, 2)
		s.Equal(registrycontract.EventIssuerRegistered, listed[0].Kind)
		s.Equal(registrycontract.EventCredentialAdded, listed[1].Kind)
	})

	s.Run("returned slice is a copy", func() {
		s.appendKind(registrycontract.EventCredentialAdded, s.user)
		listed := s.log.List()
		listed[0].Kind = "tampered"
		s.Equal(registrycontract.EventCredentialAdded, s.log.List()[0].Kind)
	})
}

func (s *LogSuite) TestListByAddress() {
	other, err := domain.ParseAddress("0x2222222222222222222222222222222222222222")
	s.Require().NoError(err)

	s.appendKind(registrycontract.EventCredentialAdded, s.user)
	s.appendKind(registrycontract.EventCredentialAdded, other)
	s.log.Append(Event{
		Kind:      registrycontract.EventCredentialVerified,
		Timestamp: time.Now(),
		User:      s.user,
		Issuer:    other,
	})

	s.Run("matches events where address is the user", func() {
		got := s.log.ListByAddress(s.user)
		s.Len(got, 2)
	})

	s.Run("matches events where address is the issuer", func() {
		got := s.log.ListByAddress(other)
		s.Len(got, 2)
	})
}

func (s *LogSuite) TestSince() {
	s.appendKind(registrycontract.EventCredentialAdded, s.user)
	s.appendKind(registrycontract.EventCredentialVerified, s.user)
	s.appendKind(registrycontract.EventCredentialRevoked, s.user)

	s.Run("returns events after the given sequence", func() {
		got := s.log.Since(1)
		s.Require().Len(got, 2)
		s.Equal(uint64(2), got[0].Sequence)
	})

	s.Run("returns nil when caught up", func() {
		s.Nil(s.log.Since(3))
	})
}

func (s *LogSuite) TestSubscribe() {
	s.Run("subscriber receives appended events", func() {
		ch, cancel := s.log.Subscribe()
		defer cancel()

		appended := s.appendKind(registrycontract.EventCredentialAdded, s.user)

		select {
		case got := <-ch:
			s.Equal(appended.Sequence, got.Sequence)
			s.Equal(appended.Kind, got.Kind)
		case <-time.After(time.Second):
			s.Fail("timed out waiting for event")
		}
	})

	s.Run("cancel closes the channel and stops delivery", func() {
		ch, cancel := s.log.Subscribe()
		cancel()

		_, open := <-ch
		s.False(open)

		// Appending after cancel must not panic on the closed channel.
		s.NotPanics(func() {
			s.appendKind(registrycontract.EventCredentialAdded, s.user)
		})
	})

	s.Run("slow subscriber does not block append", func() {
		_, cancel := s.log.Subscribe()
		defer cancel()

		// Overfill the 4-slot buffer; appends must stay non-blocking.
		done := make(chan struct{})
		go func() {
			for i := 0; i < 10; i++ {
				s.appendKind(registrycontract.EventCredentialAdded, s.user)
			}
			close(done)
		}()

		select {
		case <-done:
		case <-time.After(time.Second):
			s.Fail("append blocked on slow subscriber")
		}
	})
}
