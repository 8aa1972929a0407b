package scrape

import (
	"strings"

	"github.com/fwojciec/promos"
)

// Article URLs the sources are pinned to. Each covers the February 2026
// fuel-discount campaigns.
const (
	mercadoPagoURL = "https://www.mdzol.com/sociedad/mercado-pago-febrero-uno-uno-los-descuentos-este-mes-n1523567"
	modoBNAURL     = "https://www.mdzol.com/sociedad/banco-nacion-estos-son-los-descuentos-cargar-nafta-febrero-2026-n1444648"
	bancoMacroURL  = "https://www.losandes.com.ar/economia/promociones-combustibles-febrero-descuentos-30-y-reintegros-25000-nafta-y-gasoil-n5979954"
)

// February 2026 campaign window shared by all current sources.
const (
	campaignStart = "2026-02-01"
	campaignEnd   = "2026-02-28"
)

// DefaultSources returns every registered source in its fixed
// registration order. Adding a new news source means appending one more
// entry here; the pipeline itself doesn't change.
func DefaultSources() []Source {
	return []Source{
		MercadoPago(),
		ModoBNA(),
		BancoMacro(),
	}
}

// MercadoPago scrapes the Mercado Pago wallet discount roundup. The
// article is dedicated to the wallet, so relevance only requires the
// fuel category. A fragment that names no weekday yields the
// "desconocido" sentinel: the article lists day-specific and day-less
// benefits side by side.
func MercadoPago() Source {
	return Source{
		Name: "mercado-pago",
		URL:  mercadoPagoURL,
		Relevant: func(fragment string) bool {
			lower := strings.ToLower(fragment)
			return strings.Contains(fragment, "Combustible") ||
				strings.Contains(lower, "nafta") ||
				strings.Contains(lower, "gasoil")
		},
		Defaults: Defaults{
			Origin:            promos.OriginWallet,
			PaymentMethodType: promos.PaymentWallet,
			PaymentMethodName: "Mercado Pago",
			MerchantType:      "combustible",
			MerchantName:      "Axion/YPF/otras (según texto)",
			BenefitType:       promos.BenefitPercentageDiscount,
			CapUnit:           promos.CapPerMonth,
			FallbackWeekdays:  []string{promos.WeekdayUnknown},
			StartDate:         campaignStart,
			EndDate:           campaignEnd,
		},
	}
}

// ModoBNA scrapes the Banco Nación fuel-discount article for MODO
// wallet benefits. The article covers several banks, so relevance
// conjoins wallet evidence with the fuel category. The BNA benefit runs
// on Fridays per the surrounding editorial context, so fragments
// without an explicit weekday default to "viernes".
func ModoBNA() Source {
	return Source{
		Name: "modo-bna",
		URL:  modoBNAURL,
		Relevant: func(fragment string) bool {
			lower := strings.ToLower(fragment)
			wallet := strings.Contains(fragment, "MODO") ||
				strings.Contains(lower, "billetera virtual")
			fuel := strings.Contains(lower, "combustible") ||
				strings.Contains(lower, "nafta") ||
				strings.Contains(lower, "gasoil")
			return wallet && fuel
		},
		Defaults: Defaults{
			Origin:            promos.OriginBank,
			PaymentMethodType: promos.PaymentWallet,
			PaymentMethodName: "MODO BNA+ (Visa/Mastercard Nación)",
			MerchantType:      "combustible",
			MerchantName:      "YPF/Shell/Axion/Gulf",
			BenefitType:       promos.BenefitPercentageDiscount,
			CapUnit:           promos.CapPerMonth,
			FallbackWeekdays:  []string{"viernes"},
			StartDate:         campaignStart,
			EndDate:           campaignEnd,
		},
	}
}

// BancoMacro scrapes a fuel-promotion roundup for Banco Macro credit
// card benefits. The per-fragment cap unit follows the article wording:
// "semanal" marks a weekly cap, everything else is monthly.
func BancoMacro() Source {
	return Source{
		Name: "banco-macro",
		URL:  bancoMacroURL,
		Relevant: func(fragment string) bool {
			return strings.Contains(fragment, "Banco Macro") ||
				strings.Contains(fragment, "Macro:")
		},
		Defaults: Defaults{
			Origin:            promos.OriginBank,
			PaymentMethodType: promos.PaymentCredit,
			PaymentMethodName: "Banco Macro (Visa/Mastercard)",
			MerchantType:      "combustible",
			MerchantName:      "varias estaciones adheridas",
			BenefitType:       promos.BenefitPercentageDiscount,
			CapUnitFor: func(fragment string) promos.CapUnit {
				if strings.Contains(strings.ToLower(fragment), "semanal") {
					return promos.CapPerWeek
				}
				return promos.CapPerMonth
			},
			FallbackWeekdays: []string{promos.WeekdayUnknown},
			StartDate:        campaignStart,
			EndDate:          campaignEnd,
		},
	}
}
