package extract

import (
	"strings"

	"github.com/mlazarov/confminer/internal/model"
)

// DetectPaperType classifies a talk from its session name and title.
// Keynote and tutorial markers win over the invited default.
func DetectPaperType(sessionName, title string) model.PaperType {
	combined := strings.ToLower(sessionName + " " + title)
	switch {
	case strings.Contains(combined, "keynote"):
		return model.PaperKeynote
	case strings.Contains(combined, "tutorial"):
		return model.PaperTutorial
	default:
		return model.PaperInvited
	}
}

// PlenaryType distinguishes long from short plenaries: explicit labels
// first, then the 60-minute duration threshold.
func PlenaryType(title string, durationMinutes int) model.PaperType {
	lower := strings.ToLower(title)
	if strings.Contains(lower, "invited") {
		return model.PaperPlenaryLong
	}
	if strings.Contains(lower, "short plenary") {
		return model.PaperPlenaryShort
	}
	if durationMinutes >= 60 {
		return model.PaperPlenaryLong
	}
	return model.PaperPlenaryShort
}
