package background

import (
	"fmt"

	"github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/sagip-ph/sagip-api/schema"
	"github.com/sagip-ph/sagip-api/utils"
)

// OneSignalLanguageCode is a mapping between onesignal language code and i18n language code
var OneSignalLanguageCode = map[string]string{
	"en": "en",
	"tl": "fil",
}

// LocalizedSeverity returns the display name of a severity level in the
// given language, falling back to the raw level name.
func LocalizedSeverity(lang string, s schema.Severity) string {
	loc := utils.NewLocalizer(lang)

	if name, err := loc.Localize(&i18n.LocalizeConfig{
		MessageID: fmt.Sprintf("severity.%s.name", s),
	}); err == nil {
		return name
	}

	return string(s)
}

// AreaEscalationMessage returns headings and contents in a map where its keys
// are onesignal language codes
func AreaEscalationMessage(area schema.AreaSeverity) (map[string]string, map[string]string, error) {
	headings := map[string]string{}
	contents := map[string]string{}

	for key, lang := range OneSignalLanguageCode {
		loc := utils.NewLocalizer(lang)

		// translate heading
		heading, err := loc.Localize(&i18n.LocalizeConfig{
			MessageID: "notification.area_escalation.heading",
			TemplateData: map[string]interface{}{
				"Severity": LocalizedSeverity(lang, area.Severity),
			},
		})
		if err != nil {
			return nil, nil, err
		}

		headings[key] = heading

		// translate content
		content, err := loc.Localize(&i18n.LocalizeConfig{
			MessageID: "notification.area_escalation.content",
			TemplateData: map[string]interface{}{
				"Severity":    LocalizedSeverity(lang, area.Severity),
				"ReportCount": area.ReportCount,
			},
		})
		if err != nil {
			return nil, nil, err
		}

		contents[key] = content
	}

	return headings, contents, nil
}
