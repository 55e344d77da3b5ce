package assistant

import (
	"context"
	"errors"
	"net"
	"strings"
)

// ErrMissingKey is returned when a provider requiring an API key is
// configured without one.
var ErrMissingKey = errors.New("assistant API key is not configured")

// FailureKind classifies an assistant failure for the diagnostic
// message only; no class is ever retried automatically.
type FailureKind string

const (
	FailureMissingKey FailureKind = "missing_key"
	FailureAuth       FailureKind = "auth"
	FailureQuota      FailureKind = "quota"
	FailureNetwork    FailureKind = "network"
	FailureOther      FailureKind = "other"
)

// Classify maps an assistant error to its failure kind.
func Classify(err error) FailureKind {
	if err == nil {
		return FailureOther
	}
	if errors.Is(err, ErrMissingKey) {
		return FailureMissingKey
	}

	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || errors.As(err, &netErr) {
		return FailureNetwork
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "401") || strings.Contains(msg, "403") ||
		strings.Contains(msg, "API key not valid") || strings.Contains(msg, "INVALID_ARGUMENT"):
		return FailureAuth
	case strings.Contains(msg, "429") || strings.Contains(msg, "RESOURCE_EXHAUSTED"):
		return FailureQuota
	case strings.Contains(msg, "connection refused") || strings.Contains(msg, "no such host") ||
		strings.Contains(msg, "Failed to fetch"):
		return FailureNetwork
	}
	return FailureOther
}

// Diagnostic renders an assistant error as the user-facing message the
// frontend shows verbatim.
func Diagnostic(err error) string {
	switch Classify(err) {
	case FailureMissingKey:
		return "⚠️ 错误：未配置 API Key。请在服务端配置中填写。"
	case FailureAuth:
		return "⚠️ Key 无效或不被支持。请检查配置的 Key 与代理地址。"
	case FailureQuota:
		return "⚠️ 请求过于频繁 (429 Rate Limit)。请稍等片刻后再试。"
	case FailureNetwork:
		return "❌ 网络连接失败。请检查网络或代理地址。"
	default:
		msg := err.Error()
		if len(msg) > 100 {
			msg = msg[:100] + "..."
		}
		return "AI 服务错误: " + msg
	}
}
