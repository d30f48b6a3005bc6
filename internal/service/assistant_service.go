package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var ErrEmptyQuestion = errors.New("question must not be empty")

const assistantSystemPrompt = `Eres el Asistente de Fitness IA de GymMax, una aplicación para mejorar el rendimiento y la salud de sus usuarios a través del ejercicio y la nutrición.

Responde preguntas sobre entrenamiento, macronutrientes, micronutrientes, planificación de comidas e hidratación con información fiable y basada en evidencia, en un tono positivo, alentador y profesional. Usa lenguaje sencillo y estructura las respuestas largas con viñetas.

Límites:
- Tus respuestas son informativas y de carácter general. NUNCA diagnostiques ni prescribas tratamientos médicos o dietas personalizadas; ante condiciones de salud, recomienda consultar a un profesional.
- No recomiendes marcas ni dosis específicas de suplementos.
- Si la conversación se desvía de fitness, nutrición o rutinas, reconduce amablemente al usuario a tu especialización.`

// Conversations are stateless on the server; the client resends the visible
// history and only the most recent turns reach the model.
const maxAssistantHistory = 20

// AdviceModel is the slice of the AI client the assistant needs.
type AdviceModel interface {
	CompleteChat(ctx context.Context, systemPrompt string, history []ChatMessage, question string) (string, error)
}

// AssistantService answers free-form fitness and nutrition questions.
type AssistantService struct {
	ai AdviceModel
}

func NewAssistantService(ai AdviceModel) *AssistantService {
	return &AssistantService{
		ai: ai,
	}
}

// Advise answers one question given the prior conversation turns.
func (s *AssistantService) Advise(ctx context.Context, history []ChatMessage, question string) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", ErrEmptyQuestion
	}
	if len(history) > maxAssistantHistory {
		history = history[len(history)-maxAssistantHistory:]
	}

	answer, err := s.ai.CompleteChat(ctx, assistantSystemPrompt, history, question)
	if err != nil {
		return "", fmt.Errorf("assistant chat failed: %w", err)
	}
	return answer, nil
}
