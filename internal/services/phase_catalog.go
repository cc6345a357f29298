package services

import (
	"github.com/liora-app/liora/internal/logging"
	"github.com/liora-app/liora/internal/models"
)

// phaseDetailsCatalog is initialized once and never mutated.
var phaseDetailsCatalog = map[models.Phase]models.PhaseDetails{
	models.PhaseMenstrual: {
		Energy:    "Energy levels may be lower. Focus on rest and gentle movement.",
		Emotional: "You may experience mood swings. Practice self-compassion.",
		Nutrition: "Iron-rich foods are important. Stay hydrated and consider warm, nourishing meals.",
		Exercise:  "Light exercises like walking or gentle yoga are recommended.",
	},
	models.PhaseFollicular: {
		Energy:    "Energy levels begin to rise. Good time for new projects.",
		Emotional: "Increased optimism and creativity. Social energy is high.",
		Nutrition: "Focus on lean proteins and fresh vegetables to support hormonal balance.",
		Exercise:  "Great time for high-intensity workouts and trying new activities.",
	},
	models.PhaseOvulatory: {
		Energy:    "Peak energy levels. Take advantage of natural confidence.",
		Emotional: "High communication skills and social confidence.",
		Nutrition: "Eat light, fresh foods. Support detoxification with leafy greens.",
		Exercise:  "Perfect for challenging workouts and endurance training.",
	},
	models.PhaseLuteal: {
		Energy:    "Energy gradually decreases. Listen to your body's needs.",
		Emotional: "May experience PMS symptoms. Focus on self-care.",
		Nutrition: "Include complex carbs and magnesium-rich foods to support mood.",
		Exercise:  "Moderate exercise like swimming or pilates works well.",
	},
}

// PhaseDetailsFor returns the guidance texts for a phase. An unrecognized
// phase falls back to the follicular record; it never fails.
func PhaseDetailsFor(phase models.Phase) models.PhaseDetails {
	details, ok := phaseDetailsCatalog[phase]
	if !ok {
		logging.Log.WithField("phase", string(phase)).Warn("unexpected cycle phase, returning follicular details")
		return phaseDetailsCatalog[models.PhaseFollicular]
	}
	return details
}
