package contract

import "errors"

// Payload decoding for the exported entry points. Every entry point receives
// one optional JSON string from the host; decoding failures surface as plain
// errors so the export layer can revert with the message.

var errMissingPayload = errors.New("missing payload")

func decodeInitArgs(payload *string) (*InitArgs, error) {
	if payload == nil || *payload == "" {
		return nil, errMissingPayload
	}
	return FromJSON[InitArgs](*payload, "init args")
}

func decodeInvestArgs(payload *string) (*InvestArgs, error) {
	if payload == nil || *payload == "" {
		return nil, errMissingPayload
	}
	return FromJSON[InvestArgs](*payload, "invest args")
}

func decodePositionArgs(payload *string) (*PositionArgs, error) {
	if payload == nil || *payload == "" {
		return nil, errMissingPayload
	}
	return FromJSON[PositionArgs](*payload, "position args")
}

func decodeAmountArgs(payload *string) (*AmountArgs, error) {
	if payload == nil || *payload == "" {
		return nil, errMissingPayload
	}
	return FromJSON[AmountArgs](*payload, "amount args")
}
