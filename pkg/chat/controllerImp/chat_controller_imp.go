package controllerImp

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"agribot/entities"
	"agribot/pkg/ai"
	repo "agribot/pkg/chat/repository"
)

// historyWindow caps how much transcript is replayed to the model per turn.
const historyWindow = 20

type ChatCtrl struct {
	repo repo.ChatRepository
	llm  ai.Client
}

func New(repo repo.ChatRepository, llm ai.Client) *ChatCtrl {
	return &ChatCtrl{repo: repo, llm: llm}
}

func (h *ChatCtrl) CreateSession(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	var body struct {
		Title string `json:"title"`
	}
	_ = c.Bind(&body) // title is optional
	s := &entities.ChatSession{SessionID: uuid.NewString(), UserID: uid, Title: body.Title}
	if err := h.repo.CreateSession(s); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, s)
}

func (h *ChatCtrl) AddMessage(c echo.Context) error {
	var body struct {
		SessionID string `json:"session_id"`
		Content   string `json:"content"`
		FileURL   string `json:"file_url"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if body.SessionID == "" || body.Content == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "session_id and content required"})
	}
	if _, err := h.repo.FindSession(body.SessionID); err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "session not found"})
	}

	userMsg := &entities.ChatMessage{SessionID: body.SessionID, Role: "user", Content: body.Content, FileURL: body.FileURL}
	if err := h.repo.AppendMessage(userMsg); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	msgs, err := h.repo.Messages(body.SessionID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	if len(msgs) > historyWindow {
		msgs = msgs[len(msgs)-historyWindow:]
	}
	history := make([]ai.ChatTurn, 0, len(msgs))
	for _, m := range msgs {
		history = append(history, ai.ChatTurn{Role: m.Role, Content: m.Content})
	}

	replyText, err := h.llm.Reply(history)
	if err != nil {
		return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
	}
	reply := &entities.ChatMessage{SessionID: body.SessionID, Role: "assistant", Content: replyText}
	if err := h.repo.AppendMessage(reply); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, reply)
}

func (h *ChatCtrl) Messages(c echo.Context) error {
	id := c.Param("id")
	out, err := h.repo.Messages(id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}
