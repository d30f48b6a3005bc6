package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/maxgads/gymmax/internal/domain"
)

var ErrEmptyImport = errors.New("nothing to import")

const (
	importerSystemPrompt = `You are an expert strength coach digitizing training plans. You read messy pasted text or a photographed plan and turn it into a structured routine. Keep sets, reps and weights EXACTLY as written, including ranges like "8-12", comma decimals like "62,5" and markers like "Al fallo" or "BW". Return only valid JSON.`

	routineJSONShape = `{
  "name": "",
  "description": "",
  "days": [
    {
      "name": "e.g. Push",
      "order": 0,
      "warmUpExercises": [{"exerciseName": "", "sets": "", "reps": "", "notes": ""}],
      "exercises": [{"exerciseName": "", "sets": "", "reps": "", "weightKg": "", "notes": ""}]
    }
  ]
}`
)

// RoutineImporter turns free-form plan text or a plan photo into a stored
// routine. Parsing is delegated to the model; persistence and normalization
// go through RoutineService so imported routines obey the same rules as
// hand-built ones.
type RoutineImporter struct {
	ai       *OpenRouterClient
	routines *RoutineService
}

func NewRoutineImporter(ai *OpenRouterClient, routines *RoutineService) *RoutineImporter {
	return &RoutineImporter{
		ai:       ai,
		routines: routines,
	}
}

// FromText imports a routine from pasted plan text.
func (imp *RoutineImporter) FromText(ctx context.Context, userID, text string) (*domain.Routine, error) {
	if text == "" {
		return nil, ErrEmptyImport
	}

	prompt := fmt.Sprintf(`Digitize this training plan:

%s

Day order follows the order days appear in the text. Return ONLY valid JSON in this EXACT format:
%s`, text, routineJSONShape)

	content, err := imp.ai.Complete(ctx, importerSystemPrompt, prompt)
	if err != nil {
		return nil, fmt.Errorf("routine import failed: %w", err)
	}
	return imp.persist(ctx, userID, content)
}

// FromImage imports a routine from a photographed or screenshotted plan.
func (imp *RoutineImporter) FromImage(ctx context.Context, userID string, imageData []byte) (*domain.Routine, error) {
	if len(imageData) == 0 {
		return nil, ErrEmptyImport
	}

	prompt := `Digitize the training plan in this image. Day order follows the order days appear in the plan. Return ONLY valid JSON in this EXACT format:
` + routineJSONShape

	content, err := imp.ai.CompleteWithImage(ctx, importerSystemPrompt, prompt, imageData)
	if err != nil {
		return nil, fmt.Errorf("routine import failed: %w", err)
	}
	return imp.persist(ctx, userID, content)
}

func (imp *RoutineImporter) persist(ctx context.Context, userID, content string) (*domain.Routine, error) {
	var routine domain.Routine
	if err := decodeModelJSON(content, &routine); err != nil {
		return nil, err
	}
	if routine.Name == "" {
		routine.Name = "Imported routine"
	}
	return imp.routines.Import(ctx, userID, &routine)
}
