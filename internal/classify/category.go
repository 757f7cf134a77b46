package classify

import "strings"

// Category is the closed set of call intents. The wire values are the French
// tokens the model is instructed to answer with; they are also what lands in
// the documents.type_doc column.
type Category string

const (
	// CategorySiteReport is a dictated chantier report from the artisan.
	CategorySiteReport Category = "CHANTIER"
	// CategoryQuote is a quote request.
	CategoryQuote Category = "DEVIS"
	// CategoryPaymentReminder is a payment follow-up to send.
	CategoryPaymentReminder Category = "RAPPEL"
	// CategoryMaterialOrder is a material order to place.
	CategoryMaterialOrder Category = "COMMANDE"
	// CategoryClientMessage is a plain message to pass on; only the recording
	// is kept.
	CategoryClientMessage Category = "MESSAGE"
	// CategoryUnclassified absorbs anything the model could not, or should
	// not, classify. Unrecognized model output coerces here instead of
	// failing the call.
	CategoryUnclassified Category = "AUTRE"
)

// NormalizeCategory coerces a raw model value into the closed category set.
func NormalizeCategory(raw string) Category {
	switch Category(strings.ToUpper(strings.TrimSpace(raw))) {
	case CategorySiteReport:
		return CategorySiteReport
	case CategoryQuote:
		return CategoryQuote
	case CategoryPaymentReminder:
		return CategoryPaymentReminder
	case CategoryMaterialOrder:
		return CategoryMaterialOrder
	case CategoryClientMessage:
		return CategoryClientMessage
	default:
		return CategoryUnclassified
	}
}
