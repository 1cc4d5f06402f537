package messaging

import (
	"context"
	"testing"

	"github.com/Sugar-Rush-HQ/Cards-Against-Humanity/internal/models"
	"github.com/stretchr/testify/suite"
)

type MessagingServiceTestSuite struct {
	suite.Suite
	service Service
	ctx     context.Context
}

func TestMessagingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MessagingServiceTestSuite))
}

func (s *MessagingServiceTestSuite) SetupTest() {
	service, err := NewService(&ServiceConfig{Seed: 42})
	s.Require().NoError(err)
	s.service = service
	s.ctx = context.Background()
}

func (s *MessagingServiceTestSuite) TestGetGameStartedMessage_WithBots() {
	out, err := s.service.GetGameStartedMessage(s.ctx, &GetGameStartedMessageInput{
		Mode:      models.ModeSFW,
		BotsAdded: 5,
	})
	s.Require().NoError(err)
	s.Equal("**SFW Game Started!** Added 5 Bots.", out.Message)
}

func (s *MessagingServiceTestSuite) TestGetGameStartedMessage_FullTable() {
	out, err := s.service.GetGameStartedMessage(s.ctx, &GetGameStartedMessageInput{
		Mode: models.ModeNSFW,
	})
	s.Require().NoError(err)
	s.Equal("**NSFW Game Started!** Full table.", out.Message)
}

func (s *MessagingServiceTestSuite) TestGetQueueJoinedMessage() {
	out, err := s.service.GetQueueJoinedMessage(s.ctx, &GetQueueJoinedMessageInput{
		Mode:     models.ModeSFW,
		Position: 2,
		Capacity: 6,
	})
	s.Require().NoError(err)
	s.Equal("Joined SFW Queue! (2/6).", out.Message)
}

func (s *MessagingServiceTestSuite) TestGetPlayerJoinedMessage_NamesThePlayer() {
	out, err := s.service.GetPlayerJoinedMessage(s.ctx, &GetPlayerJoinedMessageInput{
		PlayerName: "Alice",
	})
	s.Require().NoError(err)
	s.Contains(out.Message, "Alice")
}

func (s *MessagingServiceTestSuite) TestGetRoundWinnerMessage() {
	out, err := s.service.GetRoundWinnerMessage(s.ctx, &GetRoundWinnerMessageInput{
		WinnerName: "Bob",
		Card:       "A duck.",
	})
	s.Require().NoError(err)
	s.Equal("🏆 **Bob** wins! (A duck.)", out.Message)
}

func (s *MessagingServiceTestSuite) TestFixedAnnouncements() {
	timeUp, err := s.service.GetTimeUpMessage(s.ctx, &GetTimeUpMessageInput{})
	s.Require().NoError(err)
	s.Contains(timeUp.Message, "Time is up!")

	none, err := s.service.GetNoSubmissionsMessage(s.ctx, &GetNoSubmissionsMessageInput{})
	s.Require().NoError(err)
	s.Contains(none.Message, "Skipping round")

	asleep, err := s.service.GetJudgeAsleepMessage(s.ctx, &GetJudgeAsleepMessageInput{})
	s.Require().NoError(err)
	s.Contains(asleep.Message, "fell asleep")

	thinking, err := s.service.GetBotThinkingMessage(s.ctx, &GetBotThinkingMessageInput{})
	s.Require().NoError(err)
	s.Contains(thinking.Message, "System Czar")
}
