package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// RecordPayload is the body of create and update requests
type RecordPayload struct {
	ID    string `json:"id,omitempty"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

// BatchPayload is the body of batch create requests
type BatchPayload struct {
	Records []RecordPayload `json:"records"`
}

// TestResult contains metrics for a single request
type TestResult struct {
	Scenario     string
	Success      bool
	ResponseTime time.Duration
	StatusCode   int
	Error        error
}

// TestStats contains aggregated test statistics
type TestStats struct {
	TotalRequests      int
	SuccessfulRequests int
	FailedRequests     int
	TotalTime          time.Duration
	MinResponseTime    time.Duration
	MaxResponseTime    time.Duration
	TotalResponseTime  time.Duration
	ResponseTimes      []time.Duration
	ErrorCounts        map[string]int
	ScenarioStats      map[string]int // Track requests per scenario
	Lock               sync.Mutex
}

// Scenario builds one request against the record API.
// Scenarios that touch an existing record pick one from the seeded ids.
type Scenario struct {
	Name   string
	Weight int
	Build  func(baseURL string, ids []string) (*http.Request, error)
}

func main() {
	concurrency := flag.Int("c", 5, "Number of concurrent goroutines")
	totalRequests := flag.Int("n", 100, "Total number of requests to make")
	seed := flag.Int("seed", 10, "Number of records created before the test starts")
	baseURL := flag.String("url", "http://localhost:8080", "Base URL for the API")
	delayMs := flag.Int("delay", 100, "Delay between requests in milliseconds")
	flag.Parse()

	client := &http.Client{Timeout: 10 * time.Second}

	ids, err := seedRecords(client, *baseURL, *seed)
	if err != nil {
		fmt.Printf("Failed to seed records: %v\n", err)
		return
	}

	scenarios := []Scenario{
		{"Create", 4, createScenario},
		{"Batch Create", 1, batchScenario},
		{"Update", 3, updateScenario},
		{"Get", 6, getScenario},
		{"Versions", 2, versionsScenario},
	}

	fmt.Printf("Load testing %s with %d seeded records\n", *baseURL, len(ids))
	fmt.Printf("Concurrency: %d goroutines\n", *concurrency)
	fmt.Printf("Total requests: %d\n", *totalRequests)
	fmt.Printf("Delay between requests: %d ms\n", *delayMs)

	stats := &TestStats{
		TotalRequests:   *totalRequests,
		MinResponseTime: time.Hour,
		ErrorCounts:     make(map[string]int),
		ResponseTimes:   make([]time.Duration, 0, *totalRequests),
		ScenarioStats:   make(map[string]int),
	}

	results := make(chan TestResult, *totalRequests)
	jobs := make(chan int, *totalRequests)

	var wg sync.WaitGroup
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker(client, *baseURL, *delayMs, ids, scenarios, jobs, results)
		}()
	}

	for i := 0; i < *totalRequests; i++ {
		jobs <- i
	}
	close(jobs)

	collected := make(chan struct{})
	go func() {
		defer close(collected)
		for result := range results {
			stats.record(result)
		}
	}()

	startTime := time.Now()
	fmt.Println("Test running...")

	ticker := time.NewTicker(1 * time.Second)
	go func() {
		for range ticker.C {
			stats.Lock.Lock()
			completed := stats.SuccessfulRequests + stats.FailedRequests
			if completed > 0 {
				fmt.Printf("Progress: %d/%d requests completed (%.1f%%)\n",
					completed, stats.TotalRequests, float64(completed)/float64(stats.TotalRequests)*100)
			}
			stats.Lock.Unlock()
		}
	}()

	wg.Wait()
	close(results)
	<-collected
	ticker.Stop()

	stats.TotalTime = time.Since(startTime)
	printResults(stats)
}

func (s *TestStats) record(result TestResult) {
	s.Lock.Lock()
	defer s.Lock.Unlock()

	s.ScenarioStats[result.Scenario]++
	if result.Success {
		s.SuccessfulRequests++
	} else {
		s.FailedRequests++
		errMsg := "unknown"
		if result.Error != nil {
			errMsg = result.Error.Error()
		}
		s.ErrorCounts[result.Scenario+": "+errMsg]++
	}

	s.ResponseTimes = append(s.ResponseTimes, result.ResponseTime)
	s.TotalResponseTime += result.ResponseTime
	if result.ResponseTime < s.MinResponseTime {
		s.MinResponseTime = result.ResponseTime
	}
	if result.ResponseTime > s.MaxResponseTime {
		s.MaxResponseTime = result.ResponseTime
	}
}

// seedRecords creates the records later scenarios update and read
func seedRecords(client *http.Client, baseURL string, n int) ([]string, error) {
	ids := make([]string, 0, n)
	for i := 0; i < n; i++ {
		id := "load-" + uuid.NewString()
		req, err := jsonRequest(http.MethodPost, baseURL+"/records", RecordPayload{ID: id, Title: "seed", Body: "seed"})
		if err != nil {
			return nil, err
		}
		resp, err := client.Do(req)
		if err != nil {
			return nil, err
		}
		_, _ = io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
		if resp.StatusCode != http.StatusCreated {
			return nil, fmt.Errorf("seed record %s: HTTP status code %d", id, resp.StatusCode)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func jsonRequest(method, url string, body any) (*http.Request, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequest(method, url, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

func createScenario(baseURL string, _ []string) (*http.Request, error) {
	return jsonRequest(http.MethodPost, baseURL+"/records", RecordPayload{
		Title: fmt.Sprintf("created %d", rand.Intn(1000000)),
		Body:  "load test",
	})
}

func batchScenario(baseURL string, _ []string) (*http.Request, error) {
	batch := BatchPayload{}
	for i := 0; i < 5; i++ {
		batch.Records = append(batch.Records, RecordPayload{Title: fmt.Sprintf("batch item %d", i)})
	}
	return jsonRequest(http.MethodPost, baseURL+"/records/batch", batch)
}

func updateScenario(baseURL string, ids []string) (*http.Request, error) {
	id := ids[rand.Intn(len(ids))]
	return jsonRequest(http.MethodPut, baseURL+"/records/"+id, RecordPayload{
		Title: fmt.Sprintf("updated %d", rand.Intn(1000000)),
		Body:  "load test",
	})
}

func getScenario(baseURL string, ids []string) (*http.Request, error) {
	return http.NewRequest(http.MethodGet, baseURL+"/records/"+ids[rand.Intn(len(ids))], nil)
}

func versionsScenario(baseURL string, ids []string) (*http.Request, error) {
	return http.NewRequest(http.MethodGet, baseURL+"/records/"+ids[rand.Intn(len(ids))]+"/versions", nil)
}

// pick chooses a scenario with probability proportional to its weight
func pick(scenarios []Scenario) Scenario {
	total := 0
	for _, s := range scenarios {
		total += s.Weight
	}
	n := rand.Intn(total)
	for _, s := range scenarios {
		if n < s.Weight {
			return s
		}
		n -= s.Weight
	}
	return scenarios[len(scenarios)-1]
}

func worker(client *http.Client, baseURL string, delayMs int, ids []string,
	scenarios []Scenario, jobs <-chan int, results chan<- TestResult) {

	for range jobs {
		// Optional delay between requests to prevent rate limiting
		if delayMs > 0 {
			time.Sleep(time.Duration(delayMs) * time.Millisecond)
		}

		scenario := pick(scenarios)
		req, err := scenario.Build(baseURL, ids)
		if err != nil {
			results <- TestResult{Scenario: scenario.Name, Error: err}
			continue
		}

		startTime := time.Now()
		resp, err := client.Do(req)
		result := TestResult{
			Scenario:     scenario.Name,
			ResponseTime: time.Since(startTime),
		}

		if err != nil {
			result.Error = err
		} else {
			result.StatusCode = resp.StatusCode
			result.Success = resp.StatusCode >= 200 && resp.StatusCode < 300
			if !result.Success {
				result.Error = fmt.Errorf("HTTP status code %d", resp.StatusCode)
			}
			_, _ = io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
		}

		results <- result
	}
}

func printResults(stats *TestStats) {
	rawTps := float64(stats.SuccessfulRequests) / stats.TotalTime.Seconds()
	theoreticalTps := float64(stats.TotalRequests) / stats.TotalTime.Seconds()

	var avgResponseTime time.Duration
	if len(stats.ResponseTimes) > 0 {
		avgResponseTime = stats.TotalResponseTime / time.Duration(len(stats.ResponseTimes))
	}

	var p50, p90, p95, p99 time.Duration
	if len(stats.ResponseTimes) > 0 {
		sortedTimes := append([]time.Duration(nil), stats.ResponseTimes...)
		sort.Slice(sortedTimes, func(i, j int) bool { return sortedTimes[i] < sortedTimes[j] })

		p50 = sortedTimes[len(sortedTimes)*50/100]
		p90 = sortedTimes[len(sortedTimes)*90/100]
		p95 = sortedTimes[len(sortedTimes)*95/100]
		p99 = sortedTimes[len(sortedTimes)*99/100]
	}

	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Total Requests:      %d\n", stats.TotalRequests)
	fmt.Printf("Successful Requests: %d (%.1f%%)\n", stats.SuccessfulRequests,
		float64(stats.SuccessfulRequests)/float64(stats.TotalRequests)*100)
	fmt.Printf("Failed Requests:     %d (%.1f%%)\n", stats.FailedRequests,
		float64(stats.FailedRequests)/float64(stats.TotalRequests)*100)
	fmt.Printf("Total Test Time:     %.2f seconds\n", stats.TotalTime.Seconds())

	fmt.Println("\n----------------- PERFORMANCE -----------------")
	fmt.Printf("Raw TPS:             %.2f (successful requests / total time)\n", rawTps)
	fmt.Printf("Theoretical TPS:     %.2f (if all requests were successful)\n", theoreticalTps)

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("Average Response:    %v\n", avgResponseTime)
	fmt.Printf("Minimum Response:    %v\n", stats.MinResponseTime)
	fmt.Printf("Maximum Response:    %v\n", stats.MaxResponseTime)
	fmt.Printf("P50 Response:        %v\n", p50)
	fmt.Printf("P90 Response:        %v\n", p90)
	fmt.Printf("P95 Response:        %v\n", p95)
	fmt.Printf("P99 Response:        %v\n", p99)

	fmt.Println("\n----------------- SCENARIO DISTRIBUTION -----------------")
	for scenario, count := range stats.ScenarioStats {
		fmt.Printf("%-15s: %d requests (%.1f%%)\n", scenario, count,
			float64(count)/float64(stats.TotalRequests)*100)
	}

	if stats.FailedRequests > 0 {
		fmt.Println("\n----------------- ERROR DISTRIBUTION -----------------")
		for errMsg, count := range stats.ErrorCounts {
			fmt.Printf("%-40s: %d (%.1f%%)\n", errMsg, count,
				float64(count)/float64(stats.TotalRequests)*100)
		}
	}
	fmt.Println("================================================")
}
