package mapper

import (
	"strings"

	"github.com/skynet2/netsuite-unified-target/pkg/unified"
)

// mapTransactionAddresses extracts the billing/shipping address blocks
// from the unified addresses list onto a transaction payload.
func mapTransactionAddresses(payload unified.Payload, rec unified.Record) {
	for _, addr := range rec.List("addresses") {
		switch addr.String("addressType") {
		case "billing":
			if _, ok := payload["billingAddress"]; !ok {
				payload["billingAddress"] = addressBlock(addr)
			}
		case "shipping":
			if _, ok := payload["shippingAddress"]; !ok {
				payload["shippingAddress"] = addressBlock(addr)
			}
		}
	}
}

func addressBlock(addr unified.Record) unified.Payload {
	block := unified.Payload{}

	copyFields(block, addr, map[string]string{
		"addressText": "addrText",
		"line1":       "addr1",
		"line2":       "addr2",
		"line3":       "addr3",
		"city":        "city",
		"state":       "state",
		"country":     "country",
		"postalCode":  "zip",
	})

	return block
}

// mapEntityAddresses renders the flat default-address strings used on
// entity records (vendors, customers).
func mapEntityAddresses(payload unified.Payload, rec unified.Record) {
	targets := map[string]string{
		"shipping": "defaultShippingAddress",
		"billing":  "defaultBillingAddress",
	}

	for _, addr := range rec.List("addresses") {
		target, ok := targets[addr.String("addressType")]
		if !ok {
			continue
		}

		payload[target] = flattenAddress(addr)
	}
}

func flattenAddress(addr unified.Record) string {
	street := strings.TrimSpace(strings.Join([]string{
		addr.String("line1"), addr.String("line2"), addr.String("line3"),
	}, " "))

	parts := []string{
		street,
		addr.String("city"),
		addr.String("state"),
		addr.String("country"),
		addr.String("postalCode"),
	}

	joined := strings.Join(parts, ", ")
	for strings.Contains(joined, "  ") {
		joined = strings.ReplaceAll(joined, "  ", " ")
	}

	return strings.TrimSpace(joined)
}

var phoneTargets = map[string]string{
	"unknown": "phone",
	"mobile":  "mobilePhone",
	"home":    "homePhone",
}

func mapPhoneNumbers(payload unified.Payload, rec unified.Record) {
	for _, phone := range rec.List("phoneNumbers") {
		target, ok := phoneTargets[phone.String("type")]
		if !ok {
			continue
		}

		payload[target] = phone.String("phoneNumber")
	}
}
