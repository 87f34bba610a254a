package main

import (
	"strconv"

	"slot_machine/sdk"
)

// Event represents the common structure for all emitted events.
// Each event has a type and a set of key/value attributes.
type Event struct {
	Type       string            `json:"type"`
	Attributes map[string]string `json:"attributes"`
}

// emitEvent logs an Event as JSON for indexers.
func emitEvent(eventType string, attributes map[string]string) {
	event := Event{
		Type:       eventType,
		Attributes: attributes,
	}
	sdk.Log(ToJSON(event, eventType+" event data"))
}

func EmitInitialized(owner string) {
	emitEvent("initialized", map[string]string{"owner": owner})
}

// EmitPlayed is emitted for every resolved wager. betType is only carried
// through for indexers; it does not influence the outcome.
func EmitPlayed(code, player string, bet uint64, odds uint8, betType string, roll byte, won bool, payout uint64) {
	emitEvent("played", map[string]string{
		"game":    code,
		"player":  player,
		"bet":     formatAmount(bet),
		"odds":    strconv.Itoa(int(odds)),
		"betType": betType,
		"roll":    strconv.Itoa(int(roll)),
		"won":     strconv.FormatBool(won),
		"payout":  formatAmount(payout),
	})
}

func EmitDeposited(code, account string, amount, credits uint64) {
	emitEvent("deposited", map[string]string{
		"game":    code,
		"account": account,
		"amount":  formatAmount(amount),
		"credits": formatAmount(credits),
	})
}

func EmitWithdrawn(code, account string, amount uint64) {
	emitEvent("withdrawn", map[string]string{
		"game":    code,
		"account": account,
		"amount":  formatAmount(amount),
	})
}

func EmitHouseFunded(code, by string, amount, balance uint64) {
	emitEvent("houseFunded", map[string]string{
		"game":    code,
		"by":      by,
		"amount":  formatAmount(amount),
		"balance": formatAmount(balance),
	})
}

// EmitTransferFailed records a payout that bounced and was restored.
func EmitTransferFailed(kind, to string, d Denom, amount uint64) {
	emitEvent("transferFailed", map[string]string{
		"kind":   kind,
		"to":     to,
		"denom":  d.Key(),
		"amount": formatAmount(amount),
	})
}

func EmitPanicToggled(on bool) {
	emitEvent("panicToggled", map[string]string{"panic": strconv.FormatBool(on)})
}

func EmitConfigUpdated(by string) {
	emitEvent("configUpdated", map[string]string{"by": by})
}

func EmitPartnerCreated(code, owner string, d Denom) {
	emitEvent("partnerCreated", map[string]string{
		"game":  code,
		"owner": owner,
		"denom": d.Key(),
	})
}

func EmitPartnerAltered(code, owner string, blocked bool) {
	emitEvent("partnerAltered", map[string]string{
		"game":    code,
		"owner":   owner,
		"blocked": strconv.FormatBool(blocked),
	})
}

func EmitFeesWithdrawn(pool, to string, d Denom, amount uint64) {
	emitEvent("feesWithdrawn", map[string]string{
		"pool":   pool,
		"to":     to,
		"denom":  d.Key(),
		"amount": formatAmount(amount),
	})
}

func EmitNftDistributed(d Denom, holders int, share, remainder uint64) {
	emitEvent("nftDistributed", map[string]string{
		"denom":     d.Key(),
		"holders":   strconv.Itoa(holders),
		"share":     formatAmount(share),
		"remainder": formatAmount(remainder),
	})
}

func EmitStorageChanged(account string, deposit, available uint64) {
	emitEvent("storage", map[string]string{
		"account":   account,
		"total":     formatAmount(deposit),
		"available": formatAmount(available),
	})
}
