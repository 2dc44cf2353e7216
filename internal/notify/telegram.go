package notify

import (
	"context"
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// TelegramSink delivers to a single operator chat through two bots: one that
// only announces accepted leads and one that carries the full scan log. Two
// bots keep the lead feed clean of skip/reject noise.
type TelegramSink struct {
	leadBot *tgbotapi.BotAPI
	logBot  *tgbotapi.BotAPI
	chatID  int64
}

func NewTelegramSink(leadToken, logToken string, chatID int64) (*TelegramSink, error) {
	leadBot, err := tgbotapi.NewBotAPI(leadToken)
	if err != nil {
		return nil, fmt.Errorf("lead bot: %w", err)
	}
	logBot, err := tgbotapi.NewBotAPI(logToken)
	if err != nil {
		return nil, fmt.Errorf("log bot: %w", err)
	}
	return &TelegramSink{leadBot: leadBot, logBot: logBot, chatID: chatID}, nil
}

func (s *TelegramSink) bot(ch Channel) *tgbotapi.BotAPI {
	if ch == Lead {
		return s.leadBot
	}
	return s.logBot
}

func (s *TelegramSink) Send(_ context.Context, ch Channel, text string) error {
	msg := tgbotapi.NewMessage(s.chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	if _, err := s.bot(ch).Send(msg); err != nil {
		return fmt.Errorf("telegram send: %w", err)
	}
	return nil
}

func (s *TelegramSink) SendFile(_ context.Context, ch Channel, path string) error {
	doc := tgbotapi.NewDocument(s.chatID, tgbotapi.FilePath(path))
	if _, err := s.bot(ch).Send(doc); err != nil {
		return fmt.Errorf("telegram send file: %w", err)
	}
	return nil
}

// ListenCommands long-polls the lead bot for operator commands. /download
// replies with the current lead store file. Blocks until ctx is cancelled.
func (s *TelegramSink) ListenCommands(ctx context.Context, csvPath string) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	updates := s.leadBot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			s.leadBot.StopReceivingUpdates()
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			if update.Message == nil || !update.Message.IsCommand() {
				continue
			}
			switch update.Message.Command() {
			case "download":
				doc := tgbotapi.NewDocument(update.Message.Chat.ID, tgbotapi.FilePath(csvPath))
				if _, err := s.leadBot.Send(doc); err != nil {
					log.Printf("[notify] /download reply failed: %v", err)
				}
			}
		}
	}
}
