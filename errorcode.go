package litecoind

import "fmt"

// ErrorCode is a JSON-RPC error code reported by the daemon.
//
// As per the JSON-RPC specification, the error codes from and including -32768
// to -32000 are reserved for pre-defined errors. The remaining codes are
// application-defined; the daemon's well-known codes are defined as constants
// below.
type ErrorCode int

const (
	// ParseErrorCode indicates that the daemon failed to parse a JSON-RPC
	// request.
	ParseErrorCode ErrorCode = -32700

	// InvalidRequestCode indicates that the daemon received a well-formed but
	// otherwise invalid JSON-RPC request.
	InvalidRequestCode ErrorCode = -32600

	// MethodNotFoundCode indicates that the daemon received a request for an
	// RPC method that does not exist.
	MethodNotFoundCode ErrorCode = -32601

	// InvalidParametersCode indicates that the daemon received a request that
	// contained malformed or invalid parameters.
	InvalidParametersCode ErrorCode = -32602

	// InternalErrorCode indicates that some other error condition was raised
	// within the daemon's RPC server.
	InternalErrorCode ErrorCode = -32603
)

// General application-defined error codes.
const (
	MiscErrorCode              ErrorCode = -1
	TypeErrorCode              ErrorCode = -3
	InvalidAddressOrKeyCode    ErrorCode = -5
	OutOfMemoryCode            ErrorCode = -7
	InvalidParameterCode       ErrorCode = -8
	DatabaseErrorCode          ErrorCode = -20
	DeserializationErrorCode   ErrorCode = -22
	VerifyErrorCode            ErrorCode = -25
	VerifyRejectedCode         ErrorCode = -26
	VerifyAlreadyInChainCode   ErrorCode = -27
	InWarmupCode               ErrorCode = -28
	MethodDeprecatedCode       ErrorCode = -32
	ClientNotConnectedCode     ErrorCode = -9
	ClientInInitialDownload    ErrorCode = -10
	ClientNodeAlreadyAddedCode ErrorCode = -23
	ClientNodeNotAddedCode     ErrorCode = -24
	ClientNodeNotConnectedCode ErrorCode = -29
	ClientInvalidIPOrSubnet    ErrorCode = -30
	ClientP2PDisabledCode      ErrorCode = -31
)

// Wallet error codes.
const (
	WalletErrorCode               ErrorCode = -4
	WalletInsufficientFundsCode   ErrorCode = -6
	WalletInvalidLabelNameCode    ErrorCode = -11
	WalletKeypoolRanOutCode       ErrorCode = -12
	WalletUnlockNeededCode        ErrorCode = -13
	WalletPassphraseIncorrectCode ErrorCode = -14
	WalletWrongEncStateCode       ErrorCode = -15
	WalletEncryptionFailedCode    ErrorCode = -16
	WalletAlreadyUnlockedCode     ErrorCode = -17
	WalletNotFoundCode            ErrorCode = -18
	WalletNotSpecifiedCode        ErrorCode = -19
	WalletAlreadyLoadedCode       ErrorCode = -35
)

var descriptions = map[ErrorCode]string{
	ParseErrorCode:        "parse error",
	InvalidRequestCode:    "invalid request",
	MethodNotFoundCode:    "method not found",
	InvalidParametersCode: "invalid parameters",
	InternalErrorCode:     "internal server error",

	MiscErrorCode:              "miscellaneous error",
	TypeErrorCode:              "unexpected type",
	InvalidAddressOrKeyCode:    "invalid address or key",
	OutOfMemoryCode:            "out of memory",
	InvalidParameterCode:       "invalid parameter",
	DatabaseErrorCode:          "database error",
	DeserializationErrorCode:   "deserialization error",
	VerifyErrorCode:            "verification error",
	VerifyRejectedCode:         "rejected by network rules",
	VerifyAlreadyInChainCode:   "already in chain",
	InWarmupCode:               "daemon is warming up",
	MethodDeprecatedCode:       "method deprecated",
	ClientNotConnectedCode:     "not connected",
	ClientInInitialDownload:    "still downloading initial blocks",
	ClientNodeAlreadyAddedCode: "node already added",
	ClientNodeNotAddedCode:     "node not added",
	ClientNodeNotConnectedCode: "node not connected",
	ClientInvalidIPOrSubnet:    "invalid IP or subnet",
	ClientP2PDisabledCode:      "P2P networking disabled",

	WalletErrorCode:               "wallet error",
	WalletInsufficientFundsCode:   "insufficient funds",
	WalletInvalidLabelNameCode:    "invalid label name",
	WalletKeypoolRanOutCode:       "keypool ran out",
	WalletUnlockNeededCode:        "wallet unlock needed",
	WalletPassphraseIncorrectCode: "wallet passphrase incorrect",
	WalletWrongEncStateCode:       "wrong wallet encryption state",
	WalletEncryptionFailedCode:    "wallet encryption failed",
	WalletAlreadyUnlockedCode:     "wallet already unlocked",
	WalletNotFoundCode:            "wallet not found",
	WalletNotSpecifiedCode:        "wallet not specified",
	WalletAlreadyLoadedCode:       "wallet already loaded",
}

// IsReserved returns true if c falls within the range of error codes reserved
// for pre-defined errors.
func (c ErrorCode) IsReserved() bool {
	return c >= -32768 && c <= -32000
}

// IsKnown returns true if c is one of the codes defined in this package.
func (c ErrorCode) IsKnown() bool {
	_, ok := descriptions[c]
	return ok
}

// String returns a brief description of the error.
func (c ErrorCode) String() string {
	if d, ok := descriptions[c]; ok {
		return d
	}

	if c.IsReserved() {
		return "undefined reserved error"
	}

	return "unknown error"
}

// describeError returns a short string containing the most useful information
// from an error code and a daemon-supplied message.
func describeError(code ErrorCode, message string) string {
	if message == "" || message == code.String() {
		return fmt.Sprintf("[%d] %s", code, code)
	}

	if code.IsKnown() {
		return fmt.Sprintf("[%d] %s: %s", code, code, message)
	}

	// The code is not known which makes its description quite meaningless, so
	// we only show the provided error message.
	return fmt.Sprintf("[%d] %s", code, message)
}
