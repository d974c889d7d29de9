package usecases

import (
	"fmt"
	"time"

	"distracto-server/entities"

	"gorm.io/datatypes"
)

// AIUseCase produces canned assistant output. Responses are template text,
// never a live model call; generated timetables are persisted like any other.
type AIUseCase struct {
	Timetables *TimetableUseCase
}

func NewAIUseCase(timetables *TimetableUseCase) *AIUseCase {
	return &AIUseCase{Timetables: timetables}
}

const defaultAIModel = "gemini-1.5-flash"

func (uc *AIUseCase) Chat(message, model string) string {
	if model == "" {
		model = defaultAIModel
	}
	return fmt.Sprintf("This is a mock AI response to: %q. In a production environment, this would integrate with %s API.", message, model)
}

// GenerateTimetable builds the template day plan, stores it for the user and
// returns it.
func (uc *AIUseCase) GenerateTimetable(userID, prompt, model string) (*entities.Timetable, error) {
	if model == "" {
		model = defaultAIModel
	}

	timetable := &entities.Timetable{
		Date:    Midnight(time.Now()),
		Title:   time.Now().Format("Monday, January 2, 2006"),
		Prompt:  prompt,
		AIModel: model,
		Tasks: datatypes.JSONSlice[entities.Task]{
			{Time: "07:00 - 08:00", Description: "Morning routine and breakfast"},
			{Time: "08:00 - 10:00", Description: "Deep work session - Priority tasks"},
			{Time: "10:00 - 10:15", Description: "Short break"},
			{Time: "10:15 - 12:00", Description: "Focused work on main project"},
			{Time: "12:00 - 13:00", Description: "Lunch break"},
			{Time: "13:00 - 15:00", Description: "Meetings and collaboration"},
			{Time: "15:00 - 15:15", Description: "Break and refresh"},
			{Time: "15:15 - 17:00", Description: "Administrative tasks and emails"},
			{Time: "17:00 - 18:00", Description: "Exercise and physical activity"},
			{Time: "18:00 - 19:00", Description: "Dinner"},
			{Time: "19:00 - 21:00", Description: "Personal time and relaxation"},
			{Time: "21:00 - 22:00", Description: "Plan for tomorrow and wind down"},
		},
		Recommendations: datatypes.JSONSlice[string]{
			"Schedule your most challenging tasks during your peak energy hours",
			"Take regular breaks to maintain focus and productivity",
			"Use the Pomodoro technique for deep work sessions",
			"Keep your workspace organized and distraction-free",
		},
	}

	if err := uc.Timetables.Create(userID, timetable); err != nil {
		return nil, err
	}
	return timetable, nil
}
