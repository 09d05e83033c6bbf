package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"
)

type LogStats struct {
	TotalRequests  int
	FailedRequests int
	TotalErrors    int
	QueryCount     int
	SlowQueries    []string
	EndpointHits   map[string]int
	ErrorPatterns  map[string]int
}

var (
	requestRegex   = regexp.MustCompile(`Request: (\w+) (\S+) from \S+ - Status: (\d+)`)
	queryTimeRegex = regexp.MustCompile(`Running query \(\d+ rows, ([0-9.]+)(µs|ms|s)\)`)
)

// slowQueryThreshold flags queries worth a look in the report.
const slowQueryThreshold = 200 * time.Millisecond

func main() {
	// Get today's date for log file names
	today := time.Now().Format("2006-01-02")
	logDir := "./logs"

	stats := &LogStats{
		EndpointHits:  make(map[string]int),
		ErrorPatterns: make(map[string]int),
	}

	analyzeInfoLogs(filepath.Join(logDir, fmt.Sprintf("info-%s.log", today)), stats)
	analyzeDebugLogs(filepath.Join(logDir, fmt.Sprintf("debug-%s.log", today)), stats)
	analyzeErrorLogs(filepath.Join(logDir, fmt.Sprintf("error-%s.log", today)), stats)

	printReport(stats)
}

func analyzeInfoLogs(logFile string, stats *LogStats) {
	file, err := os.Open(logFile)
	if err != nil {
		fmt.Printf("Error opening log file %s: %v\n", logFile, err)
		return
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()

		m := requestRegex.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		stats.TotalRequests++
		stats.EndpointHits[m[1]+" "+m[2]]++
		if strings.HasPrefix(m[3], "5") {
			stats.FailedRequests++
		}
	}
}

func analyzeDebugLogs(logFile string, stats *LogStats) {
	file, err := os.Open(logFile)
	if err != nil {
		fmt.Printf("Error opening log file %s: %v\n", logFile, err)
		return
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()

		m := queryTimeRegex.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		stats.QueryCount++

		if elapsed, err := time.ParseDuration(m[1] + m[2]); err == nil && elapsed >= slowQueryThreshold {
			stats.SlowQueries = append(stats.SlowQueries, line)
		}
	}
}

func analyzeErrorLogs(logFile string, stats *LogStats) {
	file, err := os.Open(logFile)
	if err != nil {
		fmt.Printf("Error opening log file %s: %v\n", logFile, err)
		return
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		stats.TotalErrors++
		extractErrorPattern(line, stats)
	}
}

func extractErrorPattern(line string, stats *LogStats) {
	// Extract the main error message
	parts := strings.SplitN(line, "Failed to", 2)
	if len(parts) > 1 {
		errorMsg := "Failed to" + strings.TrimSpace(strings.SplitN(parts[1], ":", 2)[0])
		stats.ErrorPatterns[errorMsg]++
	}
}

func printReport(stats *LogStats) {
	fmt.Println("\n=== Log Analysis Report ===")
	fmt.Println("Generated:", time.Now().Format("2006-01-02 15:04:05"))

	fmt.Println("\n1. Request Statistics:")
	fmt.Printf("   Total Requests: %d\n", stats.TotalRequests)
	fmt.Printf("   Failed Requests (5xx): %d\n", stats.FailedRequests)

	fmt.Println("\n2. Query Statistics:")
	fmt.Printf("   Total Queries: %d\n", stats.QueryCount)
	fmt.Printf("   Slow Queries: %d\n", len(stats.SlowQueries))
	for i, q := range stats.SlowQueries {
		if i >= 5 {
			break
		}
		fmt.Printf("   %s\n", q)
	}

	fmt.Println("\n3. Error Statistics:")
	fmt.Printf("   Total Errors: %d\n", stats.TotalErrors)

	fmt.Println("\n4. Busiest Endpoints:")
	printTopEndpoints(stats.EndpointHits, 10)

	fmt.Println("\n5. Most Common Errors:")
	printTopErrors(stats.ErrorPatterns, 5)
}

func printTopEndpoints(hits map[string]int, limit int) {
	type endpointHits struct {
		endpoint string
		count    int
	}

	var ranked []endpointHits
	for endpoint, count := range hits {
		ranked = append(ranked, endpointHits{endpoint, count})
	}

	sort.Slice(ranked, func(i, j int) bool {
		return ranked[i].count > ranked[j].count
	})

	for i, hit := range ranked {
		if i >= limit {
			break
		}
		fmt.Printf("   %s: %d requests\n", hit.endpoint, hit.count)
	}
}

func printTopErrors(errors map[string]int, limit int) {
	type errorCount struct {
		error string
		count int
	}

	var errorList []errorCount
	for err, count := range errors {
		errorList = append(errorList, errorCount{err, count})
	}

	sort.Slice(errorList, func(i, j int) bool {
		return errorList[i].count > errorList[j].count
	})

	for i, err := range errorList {
		if i >= limit {
			break
		}
		fmt.Printf("   %s: %d occurrences\n", err.error, err.count)
	}
}
