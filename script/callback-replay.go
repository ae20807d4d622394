package main

import (
	"crypto/sha256"
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"sort"
	"strings"
	"sync"
	"time"
)

// DeliveryResult is what one replayed callback produced
type DeliveryResult struct {
	StatusCode   int
	Location     string
	BodyDigest   string
	ResponseTime time.Duration
	Error        error
}

// Outcome identifies the page or redirect a delivery produced
func (r DeliveryResult) Outcome() string {
	if r.Error != nil {
		return "transport error: " + r.Error.Error()
	}
	if r.Location != "" {
		return fmt.Sprintf("%d -> %s", r.StatusCode, r.Location)
	}
	return fmt.Sprintf("%d page %s", r.StatusCode, r.BodyDigest)
}

// ReplayStats contains aggregated results
type ReplayStats struct {
	Deliveries    int
	TotalTime     time.Duration
	ResponseTimes []time.Duration
	Outcomes      map[string]int
	Lock          sync.Mutex
}

func main() {
	concurrency := flag.Int("c", 5, "Number of concurrent deliveries in flight")
	deliveries := flag.Int("n", 20, "Total number of deliveries of the same callback")
	baseURL := flag.String("url", "http://localhost:8080", "Base URL of the reconciler")
	mall := flag.Bool("mall", false, "Post to the mall return route")
	method := flag.String("method", http.MethodPost, "HTTP method the gateway uses (POST or GET)")
	token := flag.String("token", "", "token_ws value for a normal flow")
	abortToken := flag.String("abort-token", "", "TBK_TOKEN value for an aborted or errored flow")
	sessionID := flag.String("session", "", "TBK_ID_SESION value")
	buyOrder := flag.String("buy-order", "", "TBK_ORDEN_COMPRA value")
	delayMs := flag.Int("delay", 0, "Delay between deliveries per worker in milliseconds")
	flag.Parse()

	params := url.Values{}
	if *token != "" {
		params.Set("token_ws", *token)
	}
	if *abortToken != "" {
		params.Set("TBK_TOKEN", *abortToken)
	}
	if *sessionID != "" {
		params.Set("TBK_ID_SESION", *sessionID)
	}
	if *buyOrder != "" {
		params.Set("TBK_ORDEN_COMPRA", *buyOrder)
	}
	if len(params) == 0 {
		fmt.Println("at least one callback parameter is required (-token, -abort-token, -session, -buy-order)")
		os.Exit(2)
	}

	path := "/webpay/return"
	if *mall {
		path = "/webpay/mall/return"
	}
	target := strings.TrimRight(*baseURL, "/") + path

	fmt.Printf("Replaying %d deliveries of %v to %s\n", *deliveries, params, target)
	fmt.Printf("Concurrency: %d\n", *concurrency)

	stats := &ReplayStats{
		Deliveries:    *deliveries,
		ResponseTimes: make([]time.Duration, 0, *deliveries),
		Outcomes:      make(map[string]int),
	}

	jobs := make(chan int, *deliveries)
	for i := 0; i < *deliveries; i++ {
		jobs <- i
	}
	close(jobs)

	startTime := time.Now()

	var wg sync.WaitGroup
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker(target, strings.ToUpper(*method), params, *delayMs, jobs, stats)
		}()
	}
	wg.Wait()

	stats.TotalTime = time.Since(startTime)
	if !printResults(stats) {
		os.Exit(1)
	}
}

func worker(target, method string, params url.Values, delayMs int, jobs <-chan int, stats *ReplayStats) {
	// The shopper's browser would follow the redirect; the replay only records it
	client := &http.Client{
		Timeout: 60 * time.Second,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	for range jobs {
		if delayMs > 0 {
			time.Sleep(time.Duration(delayMs) * time.Millisecond)
		}

		result := deliver(client, target, method, params)

		stats.Lock.Lock()
		stats.ResponseTimes = append(stats.ResponseTimes, result.ResponseTime)
		stats.Outcomes[result.Outcome()]++
		stats.Lock.Unlock()
	}
}

func deliver(client *http.Client, target, method string, params url.Values) DeliveryResult {
	var req *http.Request
	var err error
	if method == http.MethodGet {
		req, err = http.NewRequest(http.MethodGet, target+"?"+params.Encode(), nil)
	} else {
		req, err = http.NewRequest(http.MethodPost, target, strings.NewReader(params.Encode()))
		if req != nil {
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		}
	}
	if err != nil {
		return DeliveryResult{Error: err}
	}

	start := time.Now()
	resp, err := client.Do(req)
	elapsed := time.Since(start)
	if err != nil {
		return DeliveryResult{Error: err, ResponseTime: elapsed}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return DeliveryResult{Error: err, ResponseTime: elapsed}
	}

	// Request IDs differ per delivery; drop them before comparing pages
	digest := sha256.Sum256([]byte(stripRequestID(string(body), resp.Header.Get("X-Request-ID"))))
	return DeliveryResult{
		StatusCode:   resp.StatusCode,
		Location:     resp.Header.Get("Location"),
		BodyDigest:   hex.EncodeToString(digest[:8]),
		ResponseTime: elapsed,
	}
}

func stripRequestID(body, requestID string) string {
	if requestID == "" {
		return body
	}
	return strings.ReplaceAll(body, requestID, "")
}

// printResults reports latency and whether every delivery saw the same outcome
func printResults(stats *ReplayStats) bool {
	sorted := make([]time.Duration, len(stats.ResponseTimes))
	copy(sorted, stats.ResponseTimes)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	fmt.Println("\n================= REPLAY RESULTS =================")
	fmt.Printf("Deliveries:          %d\n", stats.Deliveries)
	fmt.Printf("Total Time:          %.2f seconds\n", stats.TotalTime.Seconds())
	if len(sorted) > 0 {
		fmt.Printf("Minimum Response:    %v\n", sorted[0])
		fmt.Printf("P50 Response:        %v\n", sorted[len(sorted)*50/100])
		fmt.Printf("P99 Response:        %v\n", sorted[len(sorted)*99/100])
		fmt.Printf("Maximum Response:    %v\n", sorted[len(sorted)-1])
	}

	fmt.Println("\n----------------- OUTCOMES -----------------")
	for outcome, count := range stats.Outcomes {
		fmt.Printf("%-60s: %d\n", outcome, count)
	}

	fmt.Println("\n================= CONCLUSION =================")
	if len(stats.Outcomes) == 1 {
		fmt.Println("✅ every delivery produced the same outcome")
		return true
	}
	fmt.Printf("❌ deliveries diverged into %d different outcomes\n", len(stats.Outcomes))
	return false
}
