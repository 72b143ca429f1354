package bot

import (
	"context"
	"os"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/mdp/qrterminal/v3"
	"github.com/rs/zerolog"
	"go.mau.fi/whatsmeow"
	waProto "go.mau.fi/whatsmeow/binary/proto"
	"go.mau.fi/whatsmeow/store/sqlstore"
	"go.mau.fi/whatsmeow/types"
	"go.mau.fi/whatsmeow/types/events"
	waLog "go.mau.fi/whatsmeow/util/log"
)

const handleTimeout = 120 * time.Second

// WhatsApp owns the whatsmeow client and feeds inbound texts to the
// Responder.
type WhatsApp struct {
	client    *whatsmeow.Client
	responder *Responder
	log       zerolog.Logger
}

// NewWhatsApp opens the whatsmeow session store (its own SQLite file, via
// the mattn driver the sqlstore expects) and registers the event handler.
func NewWhatsApp(dsn string, responder *Responder, logger zerolog.Logger) (*WhatsApp, error) {
	container, err := sqlstore.New(context.Background(), "sqlite3", dsn, waLog.Stdout("Database", "ERROR", true))
	if err != nil {
		return nil, err
	}
	deviceStore, err := container.GetFirstDevice(context.Background())
	if err != nil {
		return nil, err
	}

	w := &WhatsApp{
		client:    whatsmeow.NewClient(deviceStore, waLog.Stdout("Client", "ERROR", true)),
		responder: responder,
		log:       logger,
	}
	w.client.AddEventHandler(w.handleEvent)
	return w, nil
}

// Connect logs in, printing a pairing QR code on first run.
func (w *WhatsApp) Connect(ctx context.Context) error {
	if w.client.Store.ID == nil {
		qrChan, _ := w.client.GetQRChannel(ctx)
		if err := w.client.Connect(); err != nil {
			return err
		}
		for evt := range qrChan {
			if evt.Event == "code" {
				w.log.Info().Msg("scan the QR code to pair")
				qrterminal.GenerateHalfBlock(evt.Code, qrterminal.L, os.Stdout)
			} else {
				w.log.Info().Str("event", evt.Event).Msg("pairing")
			}
		}
		return nil
	}
	return w.client.Connect()
}

// Disconnect tears the session down.
func (w *WhatsApp) Disconnect() {
	w.client.Disconnect()
}

func (w *WhatsApp) handleEvent(evt interface{}) {
	msg, ok := evt.(*events.Message)
	if !ok {
		return
	}
	if msg.Info.IsFromMe || msg.Info.Chat.User == "status" {
		return
	}

	text := msg.Message.GetConversation()
	if text == "" && msg.Message.GetExtendedTextMessage() != nil {
		text = msg.Message.GetExtendedTextMessage().GetText()
	}
	if text == "" {
		return
	}

	go w.respond(msg.Info.Chat, msg.Info.Sender, text)
}

func (w *WhatsApp) respond(chat, sender types.JID, text string) {
	ctx, cancel := context.WithTimeout(context.Background(), handleTimeout)
	defer cancel()

	w.log.Info().Str("from", sender.User).Msg("message received")
	w.client.SendChatPresence(ctx, chat, types.ChatPresenceComposing, types.ChatPresenceMediaText)

	reply := w.responder.HandleText(ctx, sender.ToNonAD().String(), text)

	if _, err := w.client.SendMessage(ctx, chat, &waProto.Message{Conversation: &reply}); err != nil {
		w.log.Error().Err(err).Str("to", chat.User).Msg("send failed")
	}
}
