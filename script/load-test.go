package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"strings"
	"sync"
	"time"
)

// OrderItem is one line of an order request
type OrderItem struct {
	ProductID uint64 `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// OrderRequest is the order creation payload
type OrderRequest struct {
	Items        []OrderItem `json:"items"`
	ContactName  string      `json:"contactName"`
	ContactEmail string      `json:"contactEmail"`
	ContactPhone string      `json:"contactPhone"`
}

// AuthRequest registers or logs in a buyer
type AuthRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse carries the bearer token back
type AuthResponse struct {
	Token string `json:"token"`
}

// TestResult contains metrics for a single request
type TestResult struct {
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
	StockRejections    int
	TotalTime          time.Duration
	MinResponseTime    time.Duration
	MaxResponseTime    time.Duration
	TotalResponseTime  time.Duration
	ResponseTimes      []time.Duration
	ErrorCounts        map[string]int
	BuyerStats         map[int]int    // Track requests per buyer
	ScenarioStats      map[string]int // Track requests per scenario
	Lock               sync.Mutex
}

// OrderScenario defines an order shape to submit
type OrderScenario struct {
	Name     string // For stats tracking
	Quantity int
}

func main() {

	// Define command line flags
	concurrency := flag.Int("c", 5, "Number of concurrent goroutines")
	totalRequests := flag.Int("n", 100, "Total number of orders to create")
	buyers := flag.Int("b", 3, "Number of buyer accounts to register and spread load across")
	productIDsStr := flag.String("p", "1,2,3", "Comma-separated list of product IDs to order")
	baseURL := flag.String("url", "http://localhost:8080", "Base URL for the API")
	delayMs := flag.Int("delay", 100, "Delay between requests in milliseconds")
	flag.Parse()

	// Parse product IDs
	var productIDs []uint64
	for _, idStr := range strings.Split(*productIDsStr, ",") {
		var id uint64
		if _, err := fmt.Sscanf(idStr, "%d", &id); err == nil && id > 0 {
			productIDs = append(productIDs, id)
		}
	}

	// Default to product ID 1 if no valid IDs provided
	if len(productIDs) == 0 {
		productIDs = []uint64{1}
	}

	// Define order scenarios. Larger quantities drain stock faster and
	// surface the conditional-decrement rejections the test is after.
	scenarios := []OrderScenario{
		{"Single Item", 1},
		{"Small Batch", 2},
		{"Medium Batch", 5},
		{"Large Batch", 10},
	}

	// Register and log in the buyer pool before the clock starts
	fmt.Printf("Registering %d buyers...\n", *buyers)
	tokens, err := registerBuyers(*baseURL, *buyers)
	if err != nil {
		fmt.Printf("buyer registration failed: %v\n", err)
		return
	}

	fmt.Printf("Load testing order creation across %d buyers\n", len(tokens))
	fmt.Printf("Products under contention: %v\n", productIDs)
	fmt.Printf("Order scenarios: %d different shapes\n", len(scenarios))
	fmt.Printf("Concurrency: %d goroutines\n", *concurrency)
	fmt.Printf("Total requests: %d\n", *totalRequests)
	fmt.Printf("Delay between requests: %d ms\n", *delayMs)

	// Initialize test statistics
	stats := &TestStats{
		TotalRequests:   *totalRequests,
		MinResponseTime: time.Hour, // Start with a high value that will be replaced
		ErrorCounts:     make(map[string]int),
		ResponseTimes:   make([]time.Duration, 0, *totalRequests),
		BuyerStats:      make(map[int]int),
		ScenarioStats:   make(map[string]int),
	}

	for i := range tokens {
		stats.BuyerStats[i] = 0
	}
	for _, scenario := range scenarios {
		stats.ScenarioStats[scenario.Name] = 0
	}

	// Channel to collect results
	results := make(chan TestResult, *totalRequests)

	// Channel to distribute work
	jobs := make(chan int, *totalRequests)

	// Start worker goroutines
	var wg sync.WaitGroup
	fmt.Println("Starting worker goroutines...")
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			worker(workerID, *baseURL, *delayMs, tokens, productIDs, scenarios, jobs, results, stats)
		}(i)
	}

	// Fill the jobs channel
	go func() {
		for i := 0; i < *totalRequests; i++ {
			jobs <- i
		}
		close(jobs)
	}()

	// Start a goroutine to collect results
	go func() {
		for result := range results {
			stats.Lock.Lock()
			if result.Success {
				stats.SuccessfulRequests++
			} else {
				stats.FailedRequests++
				if result.StatusCode == http.StatusConflict {
					stats.StockRejections++
				}
				errMsg := "unknown"
				if result.Error != nil {
					errMsg = result.Error.Error()
				}
				stats.ErrorCounts[errMsg]++
			}

			stats.ResponseTimes = append(stats.ResponseTimes, result.ResponseTime)
			stats.TotalResponseTime += result.ResponseTime

			if result.ResponseTime < stats.MinResponseTime {
				stats.MinResponseTime = result.ResponseTime
			}
			if result.ResponseTime > stats.MaxResponseTime {
				stats.MaxResponseTime = result.ResponseTime
			}
			stats.Lock.Unlock()
		}
	}()

	// Start the timer
	startTime := time.Now()
	fmt.Println("Test running...")

	// Print progress periodically
	ticker := time.NewTicker(1 * time.Second)
	go func() {
		for range ticker.C {
			stats.Lock.Lock()
			completed := stats.SuccessfulRequests + stats.FailedRequests
			if completed > 0 {
				fmt.Printf("Progress: %d/%d orders submitted (%.1f%%)\n",
					completed, stats.TotalRequests, float64(completed)/float64(stats.TotalRequests)*100)
			}
			stats.Lock.Unlock()
		}
	}()

	// Wait for all workers to finish
	wg.Wait()
	close(results)
	ticker.Stop()

	// Calculate the total test time
	stats.TotalTime = time.Since(startTime)

	// Print results
	printResults(stats)
}

// registerBuyers creates n throwaway buyer accounts and returns their tokens.
// Registration responds with a token directly, so no separate login round.
func registerBuyers(baseURL string, n int) ([]string, error) {
	client := &http.Client{Timeout: 10 * time.Second}
	tokens := make([]string, 0, n)
	runID := time.Now().UnixNano()

	for i := 0; i < n; i++ {
		payload := AuthRequest{
			Email:    fmt.Sprintf("loadtest-%d-%d@example.com", runID, i),
			Password: "loadtest-password",
		}
		body, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}

		resp, err := client.Post(baseURL+"/auth/register", "application/json", bytes.NewBuffer(body))
		if err != nil {
			return nil, err
		}

		var auth AuthResponse
		decodeErr := json.NewDecoder(resp.Body).Decode(&auth)
		resp.Body.Close()

		if resp.StatusCode != http.StatusCreated {
			return nil, fmt.Errorf("register buyer %d: HTTP status code %d", i, resp.StatusCode)
		}
		if decodeErr != nil {
			return nil, decodeErr
		}
		if auth.Token == "" {
			return nil, fmt.Errorf("register buyer %d: empty token", i)
		}
		tokens = append(tokens, auth.Token)
	}

	return tokens, nil
}

func worker(id int, baseURL string, delayMs int, tokens []string, productIDs []uint64,
	scenarios []OrderScenario, jobs <-chan int, results chan<- TestResult, stats *TestStats) {

	client := &http.Client{
		Timeout: 10 * time.Second,
	}

	for range jobs {
		// Optional delay between requests to prevent rate limiting
		if delayMs > 0 {
			time.Sleep(time.Duration(delayMs) * time.Millisecond)
		}

		// Randomly select a buyer and an order shape
		buyerIdx := rand.Intn(len(tokens))
		scenario := scenarios[rand.Intn(len(scenarios))]
		productID := productIDs[rand.Intn(len(productIDs))]

		// Update stats for which buyer and scenario was selected
		stats.Lock.Lock()
		stats.BuyerStats[buyerIdx]++
		stats.ScenarioStats[scenario.Name]++
		stats.Lock.Unlock()

		order := OrderRequest{
			Items: []OrderItem{
				{ProductID: productID, Quantity: scenario.Quantity},
			},
			ContactName:  fmt.Sprintf("Load Tester %d", buyerIdx),
			ContactEmail: fmt.Sprintf("loadtest-%d@example.com", buyerIdx),
		}

		jsonData, err := json.Marshal(order)
		if err != nil {
			results <- TestResult{Success: false, Error: err}
			continue
		}

		// Create request
		req, err := http.NewRequest("POST", baseURL+"/orders", bytes.NewBuffer(jsonData))
		if err != nil {
			results <- TestResult{Success: false, Error: err}
			continue
		}

		// Set headers
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+tokens[buyerIdx])

		// Send the request and measure response time
		startTime := time.Now()
		resp, err := client.Do(req)
		responseTime := time.Since(startTime)

		result := TestResult{
			ResponseTime: responseTime,
		}

		if err != nil {
			result.Success = false
			result.Error = err
		} else {
			statusCode := resp.StatusCode
			result.StatusCode = statusCode
			result.Success = (statusCode >= 200 && statusCode < 300)
			if !result.Success {
				result.Error = fmt.Errorf("HTTP status code %d", statusCode)
			}
			resp.Body.Close()
		}

		results <- result
	}
}

func printResults(stats *TestStats) {
	// Calculate theoretical TPS (ignores actual delays between requests)
	rawTps := float64(stats.SuccessfulRequests) / stats.TotalTime.Seconds()

	// Calculate TPS if all requests were successful
	theoreticalTps := float64(stats.TotalRequests) / stats.TotalTime.Seconds()

	// Calculate success rate adjusted TPS
	adjustedTps := theoreticalTps * (float64(stats.SuccessfulRequests) / float64(stats.TotalRequests))

	// Calculate average response time
	var avgResponseTime time.Duration
	if len(stats.ResponseTimes) > 0 {
		avgResponseTime = stats.TotalResponseTime / time.Duration(len(stats.ResponseTimes))
	}

	// Calculate percentiles
	var p50, p90, p95, p99 time.Duration
	if len(stats.ResponseTimes) > 0 {
		// Sort the response times
		sortedTimes := make([]time.Duration, len(stats.ResponseTimes))
		copy(sortedTimes, stats.ResponseTimes)

		// Simple bubble sort (OK for small datasets)
		for i := 0; i < len(sortedTimes); i++ {
			for j := i + 1; j < len(sortedTimes); j++ {
				if sortedTimes[i] > sortedTimes[j] {
					sortedTimes[i], sortedTimes[j] = sortedTimes[j], sortedTimes[i]
				}
			}
		}

		p50 = sortedTimes[len(sortedTimes)*50/100]
		p90 = sortedTimes[len(sortedTimes)*90/100]
		p95 = sortedTimes[len(sortedTimes)*95/100]
		p99 = sortedTimes[len(sortedTimes)*99/100]
	}

	// Print results
	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Total Requests:      %d\n", stats.TotalRequests)
	fmt.Printf("Successful Requests: %d (%.1f%%)\n", stats.SuccessfulRequests,
		float64(stats.SuccessfulRequests)/float64(stats.TotalRequests)*100)
	fmt.Printf("Failed Requests:     %d (%.1f%%)\n", stats.FailedRequests,
		float64(stats.FailedRequests)/float64(stats.TotalRequests)*100)
	fmt.Printf("Stock Rejections:    %d (HTTP 409, expected once a product drains)\n", stats.StockRejections)
	fmt.Printf("Total Test Time:     %.2f seconds\n", stats.TotalTime.Seconds())

	fmt.Println("\n----------------- PERFORMANCE -----------------")
	fmt.Printf("Raw TPS:             %.2f (successful requests / total time)\n", rawTps)
	fmt.Printf("Theoretical TPS:     %.2f (if all requests were successful)\n", theoreticalTps)
	fmt.Printf("Success-adjusted TPS: %.2f (theoretical * success rate)\n", adjustedTps)

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("Average Response:    %v\n", avgResponseTime)
	fmt.Printf("Minimum Response:    %v\n", stats.MinResponseTime)
	fmt.Printf("Maximum Response:    %v\n", stats.MaxResponseTime)
	fmt.Printf("P50 Response:        %v\n", p50)
	fmt.Printf("P90 Response:        %v\n", p90)
	fmt.Printf("P95 Response:        %v\n", p95)
	fmt.Printf("P99 Response:        %v\n", p99)

	// Print buyer distribution
	fmt.Println("\n----------------- BUYER DISTRIBUTION -----------------")
	totalBuyers := 0
	for _, count := range stats.BuyerStats {
		totalBuyers += count
	}
	for buyerIdx, count := range stats.BuyerStats {
		if count > 0 {
			fmt.Printf("Buyer %d:    %d requests (%.1f%%)\n", buyerIdx, count,
				float64(count)/float64(totalBuyers)*100)
		}
	}

	// Print scenario distribution
	fmt.Println("\n----------------- SCENARIO DISTRIBUTION -----------------")
	totalScenarios := 0
	for _, count := range stats.ScenarioStats {
		totalScenarios += count
	}
	for scenario, count := range stats.ScenarioStats {
		if count > 0 {
			fmt.Printf("%-15s: %d requests (%.1f%%)\n", scenario, count,
				float64(count)/float64(totalScenarios)*100)
		}
	}

	// Print error distribution if there were errors
	if stats.FailedRequests > 0 {
		fmt.Println("\n----------------- ERROR DISTRIBUTION -----------------")
		for errMsg, count := range stats.ErrorCounts {
			fmt.Printf("%-40s: %d (%.1f%%)\n", errMsg, count,
				float64(count)/float64(stats.TotalRequests)*100)
		}
	}

	fmt.Println("================================================")
}
