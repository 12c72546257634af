package extract

import (
	"strings"

	"github.com/mlazarov/confminer/internal/model"
)

// roleRule maps role phrases to a canonical position and, for the named
// chair responsibilities, a fixed title string.
type roleRule struct {
	phrases  []string
	position model.Position
	title    string
}

// roleRules is evaluated top-down; the first rule whose phrase occurs in
// the combined role and heading text wins. Specific titles come before
// the generic co-chair/area-chair/chair rules so that "publicity chair"
// never degrades to a bare chair.
var roleRules = []roleRule{
	{[]string{"general chair", "conference chair"}, model.PositionChair, "General Chair"},
	{[]string{"program chair", "programme chair", "pc chair", "pc primary chair"}, model.PositionChair, "Program Chair"},
	{[]string{"steering chair", "sc chair"}, model.PositionChair, "Steering Chair"},
	{[]string{"local chair"}, model.PositionChair, "Local Chair"},
	{[]string{"publicity chair"}, model.PositionChair, "Publicity Chair"},
	{[]string{"web chair", "webmaster"}, model.PositionChair, "Web Chair"},
	{[]string{"registration chair"}, model.PositionChair, "Registration Chair"},
	{[]string{"proceedings chair", "publication chair"}, model.PositionChair, "Proceedings Chair"},
	{[]string{"poster chair"}, model.PositionChair, "Poster Chair"},
	{[]string{"tutorial chair"}, model.PositionChair, "Tutorial Chair"},
	{[]string{"workshop chair"}, model.PositionChair, "Workshop Chair"},
	{[]string{"sponsorship chair", "sponsor chair"}, model.PositionChair, "Sponsorship Chair"},
	{[]string{"finance chair"}, model.PositionChair, "Finance Chair"},
	{[]string{"social events chair", "social chair"}, model.PositionChair, "Social Events Chair"},
	{[]string{"co-chair", "cochair", "co chair"}, model.PositionCoChair, ""},
	{[]string{"area chair", "senior pc"}, model.PositionAreaChair, ""},
	{[]string{"chair"}, model.PositionChair, ""},
}

// ClassifyRole maps role text plus the ambient heading text to a
// canonical position and optional role title. Text with no role phrase
// defaults to member; that is never an error.
func ClassifyRole(roleText, headingText string) (model.Position, string) {
	combined := strings.ToLower(roleText + " " + headingText)

	for _, rule := range roleRules {
		for _, phrase := range rule.phrases {
			if strings.Contains(combined, phrase) {
				return rule.position, rule.title
			}
		}
	}
	return model.PositionMember, ""
}
