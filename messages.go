package findbugs

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message bundle keys
const (
	KeyName                 = "report.findbugs.name"
	KeyDescription          = "report.findbugs.description"
	KeyReportTitle          = "report.findbugs.reporttitle"
	KeyLinkTitle            = "report.findbugs.linktitle"
	KeyLink                 = "report.findbugs.link"
	KeyVersionTitle         = "report.findbugs.versiontitle"
	KeyVersion              = "report.findbugs.version"
	KeyThreshold            = "report.findbugs.threshold"
	KeyEffort               = "report.findbugs.effort"
	KeySummary              = "report.findbugs.summary"
	KeyFiles                = "report.findbugs.files"
	KeyColumnBug            = "report.findbugs.column.bug"
	KeyColumnCategory       = "report.findbugs.column.category"
	KeyColumnDetails        = "report.findbugs.column.details"
	KeyColumnLine           = "report.findbugs.column.line"
	KeyColumnClass          = "report.findbugs.column.class"
	KeyColumnClasses        = "report.findbugs.column.classes"
	KeyColumnBugs           = "report.findbugs.column.bugs"
	KeyColumnErrors         = "report.findbugs.column.errors"
	KeyColumnMissingClasses = "report.findbugs.column.missingclasses"
	KeyDetailsLink          = "report.findbugs.detaillink"
	KeyNoLine               = "report.findbugs.noline"
	KeySourceRoot           = "report.findbugs.sourceRoot"
	KeyJavaSources          = "report.findbugs.javasources"
)

var (
	languages = []language.Tag{language.English, language.German, language.French}

	translations = map[language.Tag]map[string]string{
		language.English: {
			KeyName:                 "FindBugs",
			KeyDescription:          "Generates a source code report with the FindBugs Library.",
			KeyReportTitle:          "FindBugs Bug Detector Report",
			KeyLinkTitle:            "The following document contains the results of",
			KeyLink:                 "http://findbugs.sourceforge.net",
			KeyVersionTitle:         "FindBugs Version is",
			KeyVersion:              "1.2.1",
			KeyThreshold:            "Threshold is",
			KeyEffort:               "Effort is",
			KeySummary:              "Summary",
			KeyFiles:                "Files",
			KeyColumnBug:            "Bug",
			KeyColumnCategory:       "Category",
			KeyColumnDetails:        "Details",
			KeyColumnLine:           "Line",
			KeyColumnClass:          "Class",
			KeyColumnClasses:        "Classes",
			KeyColumnBugs:           "Bugs",
			KeyColumnErrors:         "Errors",
			KeyColumnMissingClasses: "Missing Classes",
			KeyDetailsLink:          "http://findbugs.sourceforge.net/bugDescriptions.html",
			KeyNoLine:               "Line number not available",
			KeySourceRoot:           "Source root:",
			KeyJavaSources:          "Class files:",
		},
		language.German: {
			KeyDescription:          "Erzeugt einen Quellcode-Bericht mit der FindBugs Bibliothek.",
			KeyReportTitle:          "FindBugs Fehlerbericht",
			KeyLinkTitle:            "Das folgende Dokument enthält die Ergebnisse von",
			KeyVersionTitle:         "FindBugs Version ist",
			KeyThreshold:            "Schwellwert ist",
			KeyEffort:               "Aufwand ist",
			KeySummary:              "Zusammenfassung",
			KeyFiles:                "Dateien",
			KeyColumnBug:            "Fehler",
			KeyColumnCategory:       "Kategorie",
			KeyColumnDetails:        "Details",
			KeyColumnLine:           "Zeile",
			KeyColumnClass:          "Klasse",
			KeyColumnClasses:        "Klassen",
			KeyColumnBugs:           "Fehler",
			KeyColumnErrors:         "Analysefehler",
			KeyColumnMissingClasses: "Fehlende Klassen",
			KeyNoLine:               "Zeilennummer nicht verfügbar",
			KeySourceRoot:           "Quellverzeichnis:",
			KeyJavaSources:          "Klassendateien:",
		},
		language.French: {
			KeyDescription:          "Génère un rapport sur le code source avec la bibliothèque FindBugs.",
			KeyReportTitle:          "Rapport du détecteur de bogues FindBugs",
			KeyLinkTitle:            "Le document suivant contient les résultats de",
			KeyVersionTitle:         "La version de FindBugs est",
			KeyThreshold:            "Le seuil est",
			KeyEffort:               "L'effort est",
			KeySummary:              "Résumé",
			KeyFiles:                "Fichiers",
			KeyColumnBug:            "Bogue",
			KeyColumnCategory:       "Catégorie",
			KeyColumnDetails:        "Détails",
			KeyColumnLine:           "Ligne",
			KeyColumnClass:          "Classe",
			KeyColumnClasses:        "Classes",
			KeyColumnBugs:           "Bogues",
			KeyColumnErrors:         "Erreurs",
			KeyColumnMissingClasses: "Classes manquantes",
			KeyNoLine:               "Numéro de ligne non disponible",
			KeySourceRoot:           "Répertoire source :",
			KeyJavaSources:          "Fichiers de classes :",
		},
	}

	bundle = newCatalog()
)

func newCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for tag, msgs := range translations {
		for key, msg := range translations[language.English] {
			if localized, found := msgs[key]; found {
				msg = localized
			}
			if err := b.SetString(tag, key, msg); err != nil {
				panic(err)
			}
		}
	}
	return b
}

// Messages gives access to the localized report labels.
type Messages struct {
	tag     language.Tag
	printer *message.Printer
}

// NewMessages loads the bundle for the given locale such as "de" or "fr-CA".
// Unknown or unsupported locales fall back to English.
func NewMessages(locale string) *Messages {
	tag := language.English
	if locale != "" {
		if requested, err := language.Parse(locale); err == nil {
			_, index, _ := language.NewMatcher(languages).Match(requested)
			tag = languages[index]
		}
	}
	return &Messages{
		tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(bundle)),
	}
}

// Tag returns the language of the bundle
func (m *Messages) Tag() language.Tag {
	return m.tag
}

// Get returns the label for key. Unknown keys are returned unchanged.
func (m *Messages) Get(key string) string {
	if _, found := translations[language.English][key]; !found {
		return key
	}
	return m.printer.Sprintf(key)
}

// Name returns the display name of the report
func (m *Messages) Name() string {
	return m.Get(KeyName)
}

// Description returns the description of the report
func (m *Messages) Description() string {
	return m.Get(KeyDescription)
}
