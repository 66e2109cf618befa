package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/JOHN41-tech/assistant-L/internal/learning"
	"github.com/JOHN41-tech/assistant-L/internal/llm"
	"github.com/JOHN41-tech/assistant-L/internal/quiz"
	"github.com/JOHN41-tech/assistant-L/internal/roadmap"
	"github.com/JOHN41-tech/assistant-L/internal/session"
	"github.com/JOHN41-tech/assistant-L/internal/store"
)

func (s *Server) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, learning.ErrTopicRequired),
		errors.Is(err, learning.ErrMessageRequired),
		errors.Is(err, learning.ErrContentRequired),
		errors.Is(err, learning.ErrStepRequired),
		errors.Is(err, learning.ErrNoActiveSession),
		errors.Is(err, session.ErrNoRoadmap),
		errors.Is(err, session.ErrNoCurrentStep):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrTopicNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, roadmap.ErrNoSteps),
		errors.Is(err, quiz.ErrNoQuestions),
		llm.IsGenerationError(err):
		s.log.Warn("generation failed", "path", c.Request.URL.Path, "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	default:
		s.log.Error("request failed", "path", c.Request.URL.Path, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

type startTopicRequest struct {
	Topic      string `json:"topic"`
	Persona    string `json:"persona"`
	Difficulty string `json:"difficulty"`
}

func (s *Server) startTopic(c *gin.Context) {
	var req startTopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	res, err := s.svc.StartTopic(c.Request.Context(), sessionID(c), req.Topic, req.Persona, req.Difficulty)
	if err != nil {
		s.fail(c, err)
		return
	}

	c.SetCookie(topicCookieName, strconv.FormatUint(uint64(res.TopicID), 10), 0, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"topic":       res.Topic,
		"topic_id":    res.TopicID,
		"steps":       res.Steps,
		"currentStep": res.CurrentStepIndex,
	})
}

func (s *Server) getGuide(c *gin.Context) {
	guide, err := s.svc.Guide(c.Request.Context(), sessionID(c))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "guide": guide.Content})
}

func (s *Server) nextStep(c *gin.Context) {
	res, err := s.svc.NextStep(c.Request.Context(), sessionID(c), topicID(c))
	if err != nil {
		s.fail(c, err)
		return
	}

	if res.Completed {
		c.JSON(http.StatusOK, gin.H{
			"success":   true,
			"completed": true,
			"message":   "You have completed the roadmap!",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"step":             res.Step,
		"currentStepIndex": res.CurrentStepIndex,
	})
}

type chatRequest struct {
	Message string `json:"message"`
}

func (s *Server) chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	reply, err := s.svc.Chat(c.Request.Context(), sessionID(c), topicID(c), req.Message)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "response": reply})
}

func (s *Server) generateQuiz(c *gin.Context) {
	questions, err := s.svc.GenerateQuiz(c.Request.Context(), sessionID(c))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "questions": questions})
}

type submitQuizRequest struct {
	Questions []quiz.Question   `json:"questions"`
	Answers   map[string]string `json:"answers"`
}

func (s *Server) submitQuiz(c *gin.Context) {
	var req submitQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	summary, err := s.svc.SubmitQuiz(c.Request.Context(), sessionID(c), topicID(c), req.Questions, req.Answers)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"score":      summary.Score,
		"total":      summary.Total,
		"percentage": summary.Percentage,
		"results":    summary.Results,
	})
}

type saveNoteRequest struct {
	Content string `json:"content"`
}

func (s *Server) saveNote(c *gin.Context) {
	var req saveNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := s.svc.SaveNote(c.Request.Context(), sessionID(c), topicID(c), req.Content); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (s *Server) getNote(c *gin.Context) {
	note, err := s.svc.GetNote(c.Request.Context(), sessionID(c), topicID(c))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "note": note})
}

func (s *Server) chatHistory(c *gin.Context) {
	history, err := s.svc.ChatHistory(c.Request.Context(), sessionID(c), topicID(c))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "history": history})
}

func (s *Server) clearChat(c *gin.Context) {
	if err := s.svc.ClearChat(c.Request.Context(), sessionID(c), topicID(c)); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (s *Server) topics(c *gin.Context) {
	topics, err := s.svc.Topics(c.Request.Context(), sessionID(c))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "topics": topics})
}

func (s *Server) stats(c *gin.Context) {
	stats, err := s.svc.Stats(c.Request.Context(), sessionID(c))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"totalTopics":     stats.TopicCount,
		"completedTopics": stats.CompletedTopics,
		"progress":        stats.Progress,
		"quizCount":       stats.QuizCount,
		"averageScore":    stats.AverageScore,
	})
}

func (s *Server) export(c *gin.Context) {
	filename, content, err := s.svc.Export(c.Request.Context(), sessionID(c), topicID(c))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "text/markdown", []byte(content))
}

type resourcesRequest struct {
	Topic string `json:"topic"`
	Step  string `json:"step"`
}

func (s *Server) getResources(c *gin.Context) {
	var req resourcesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	found, err := s.svc.Resources(c.Request.Context(), req.Topic, req.Step)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "resources": found})
}
