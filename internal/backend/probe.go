package backend

import (
    "context"
    "errors"
    "fmt"
    "io"
    "net"
    "net/http"
    "net/url"
    "os"
    "strings"
    "syscall"
    "time"
)

const (
    // HealthPath は疎通確認で叩くパス。
    HealthPath = "/health"
    // ProbeTimeout は疎通確認1回あたりの上限時間。
    ProbeTimeout = 5 * time.Second
)

// TestResult は疎通確認の結果。転送エラーもここに入る（エラーとしては返さない）。
// 値の無い status / message は JSON では null になる。
type TestResult struct {
    OK      bool    `json:"ok"`
    Status  *int    `json:"status"`
    Message *string `json:"message"`
}

// Prober は /health への単発 GET で疎通を確認する。リトライはしない。
type Prober struct {
    timeout time.Duration
}

func NewProber() *Prober { return &Prober{timeout: ProbeTimeout} }

// Test は raw を正規化して <addr>/health に GET する。
// 入力が不正なら通信せずにエラーを返す。接続失敗は OK=false の結果として返す。
func (p *Prober) Test(ctx context.Context, raw string) (TestResult, error) {
    base, err := NormalizeBackendURL(raw)
    if err != nil { return TestResult{}, err }
    target := base + HealthPath

    ctx, cancel := context.WithTimeout(ctx, p.timeout)
    defer cancel()
    req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
    if err != nil { return p.failed(err), nil }

    // 呼び出し間で接続を使い回さない
    cli := &http.Client{
        Timeout:   p.timeout,
        Transport: &http.Transport{Proxy: http.ProxyFromEnvironment, DisableKeepAlives: true},
    }
    resp, err := cli.Do(req)
    if err != nil { return p.failed(err), nil }
    defer resp.Body.Close()
    _, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))

    code := resp.StatusCode
    res := TestResult{OK: code >= 200 && code < 300, Status: &code}
    if !res.OK {
        msg := fmt.Sprintf("server returned status code %d", code)
        res.Message = &msg
    }
    return res, nil
}

func (p *Prober) failed(err error) TestResult {
    msg := "connection failed: " + describeTransportError(err, p.timeout)
    return TestResult{OK: false, Message: &msg}
}

// describeTransportError は原因ごとに読みやすい文言にする。
func describeTransportError(err error, timeout time.Duration) string {
    var dnsErr *net.DNSError
    var ne net.Error
    switch {
    case errors.Is(err, context.DeadlineExceeded), errors.Is(err, os.ErrDeadlineExceeded):
        return "timed out after " + timeout.String()
    case errors.As(err, &ne) && ne.Timeout():
        return "timed out after " + timeout.String()
    case errors.As(err, &dnsErr):
        return "cannot resolve host " + dnsErr.Name
    case errors.Is(err, syscall.ECONNREFUSED):
        return "connection refused"
    case errors.Is(err, syscall.ENETUNREACH), errors.Is(err, syscall.EHOSTUNREACH):
        return "network unreachable"
    }
    var ue *url.Error
    if errors.As(err, &ue) { err = ue.Err }
    return strings.TrimSpace(err.Error())
}
