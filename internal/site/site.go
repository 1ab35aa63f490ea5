package site

import "net/url"

const (
	BrokerName       = "Ezequias Alves Imóveis"
	BrokerCredential = "CRECI - AL 9384"
	BrokerPhoneHuman = "+55 82 99198-1454"
	BrokerPhoneWA    = "5582991981454"
)

const WhatsAppBaseMessage = "Ola, vi os imoveis em destaque e quero mais informacoes."

// BuildWhatsAppURL builds a click-to-chat link for the broker's number.
func BuildWhatsAppURL(message string) string {
	return "https://wa.me/" + BrokerPhoneWA + "?text=" + url.QueryEscape(message)
}
