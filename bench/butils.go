package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/btree"
	"github.com/wangjohn/quickselect"

	"github.com/rlaau/S_A_Exercises/internal/input"
	"github.com/rlaau/S_A_Exercises/internal/qsort"
)

// BenchmarkResult 벤치마크 결과를 저장하는 구조체
type BenchmarkResult struct {
	Algorithm    string        `json:"algorithm"`
	DataSize     int           `json:"data_size"`
	StorageType  string        `json:"storage_type"`
	TestRun      int           `json:"test_run"`
	Duration     time.Duration `json:"duration"`
	MemoryUsage  uint64        `json:"memory_usage_bytes"`
	GoroutineNum int           `json:"goroutine_num"`
}

// sorters 이름별 정렬 함수. 결과 슬라이스를 돌려준다 (제자리 정렬이면 입력 그대로).
var sorters = map[string]func([]int) []int{
	"quicksort": func(a []int) []int {
		qsort.Sort(a)
		return a
	},
	"parallel_quicksort": func(a []int) []int {
		qsort.ParallelSort(a)
		return a
	},
	"mergesort":          qsort.MergeSort[int],
	"parallel_mergesort": qsort.ParallelMergeSort[int],
}

var algoNames = map[string]string{
	"quicksort":          "퀵소트",
	"parallel_quicksort": "병렬퀵소트",
	"mergesort":          "머지소트",
	"parallel_mergesort": "병렬머지소트",
}

var storageNames = map[string]string{
	"memory": "인메모리",
	"file":   "파일",
}

// generateRandomData 고정 시드로 재현 가능한 랜덤 데이터
func generateRandomData(size int, seed int64) []int {
	r := rand.New(rand.NewSource(seed))
	data := make([]int, size)
	for i := range size {
		data[i] = r.Intn(1000000)
	}
	return data
}

// writeDataToFile 한 줄에 하나씩 (64KB 버퍼)
func writeDataToFile(data []int, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return errors.Wrap(err, "create data file")
	}
	defer file.Close()

	writer := bufio.NewWriterSize(file, 64*1024)
	for _, num := range data {
		writer.WriteString(strconv.Itoa(num))
		writer.WriteByte('\n')
	}
	return errors.Wrap(writer.Flush(), "flush data file")
}

// readDataFromFile writeDataToFile의 역
func readDataFromFile(filename string) ([]int, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrap(err, "open data file")
	}
	defer file.Close()

	data, err := input.NewScanner(file).All()
	return data, errors.Wrapf(err, "read %s", filename)
}

// measure fn 실행 시간과 그동안 누적 할당량
func measure(fn func()) (time.Duration, uint64) {
	var before, after runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&before)

	start := time.Now()
	fn()
	duration := time.Since(start)

	runtime.ReadMemStats(&after)
	return duration, after.TotalAlloc - before.TotalAlloc
}

// runBenchmark 데이터 복사본을 정렬하고 결과를 검증한다
func runBenchmark(algorithm string, data []int, isFileMode bool) (BenchmarkResult, error) {
	sorter, ok := sorters[algorithm]
	if !ok {
		return BenchmarkResult{}, errors.Newf("unknown algorithm %q", algorithm)
	}

	result := BenchmarkResult{
		Algorithm:    algorithm,
		DataSize:     len(data),
		StorageType:  "memory",
		GoroutineNum: runtime.NumGoroutine(),
	}
	if isFileMode {
		result.StorageType = "file"
	}

	testData := make([]int, len(data))
	copy(testData, data)

	var sorted []int
	result.Duration, result.MemoryUsage = measure(func() {
		sorted = sorter(testData)
	})

	if err := verifySorted(data, sorted); err != nil {
		return result, errors.Wrapf(err, "%s on %d items", algorithm, len(data))
	}
	return result, nil
}

type valueCount struct {
	value int
	count int
}

// verifySorted output이 input의 오름차순 순열인지 B-트리 멀티셋으로 확인
func verifySorted(input, output []int) error {
	tree := btree.NewG(32, func(a, b valueCount) bool { return a.value < b.value })
	for _, v := range input {
		item, _ := tree.Get(valueCount{value: v})
		item.value = v
		item.count++
		tree.ReplaceOrInsert(item)
	}

	var err error
	i := 0
	tree.Ascend(func(item valueCount) bool {
		for range item.count {
			if i >= len(output) || output[i] != item.value {
				err = errors.Newf("mismatch at index %d: want %d", i, item.value)
				return false
			}
			i++
		}
		return true
	})
	if err != nil {
		return err
	}
	if i != len(output) {
		return errors.Newf("output has %d items, input has %d", len(output), i)
	}
	return nil
}

// medianDuration 중앙값 (짝수 개면 위쪽 중앙값)
func medianDuration(ds []time.Duration) (time.Duration, error) {
	if len(ds) == 0 {
		return 0, nil
	}
	vals := make([]int, len(ds))
	for i, d := range ds {
		vals[i] = int(d)
	}

	// 앞쪽 k개가 가장 작은 k개가 되도록 선택
	k := len(vals)/2 + 1
	if err := quickselect.IntQuickSelect(vals, k); err != nil {
		return 0, errors.Wrap(err, "quickselect")
	}
	m := vals[0]
	for _, v := range vals[1:k] {
		m = max(m, v)
	}
	return time.Duration(m), nil
}

type groupKey struct {
	size    int
	storage string
}

// groups 결과에 나타난 (크기, 저장 방식) 조합을 처음 나온 순서대로
func groups(results []BenchmarkResult) []groupKey {
	var keys []groupKey
	seen := map[groupKey]bool{}
	for _, r := range results {
		k := groupKey{r.DataSize, r.StorageType}
		if !seen[k] {
			seen[k] = true
			keys = append(keys, k)
		}
	}
	return keys
}

// renderMarkdown 크기/저장 방식별 표와 요약 통계
func renderMarkdown(results []BenchmarkResult, algorithms []string, now time.Time) (string, error) {
	var b strings.Builder

	b.WriteString("# 정렬 알고리즘 벤치마크 결과\n\n")
	fmt.Fprintf(&b, "실행 시간: %s\n", now.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "CPU 코어 수: %d\n", runtime.NumCPU())
	fmt.Fprintf(&b, "GOMAXPROCS: %d\n\n", runtime.GOMAXPROCS(0))

	for _, g := range groups(results) {
		fmt.Fprintf(&b, "## %s - %d개 데이터\n\n", storageNames[g.storage], g.size)
		b.WriteString("| 알고리즘 | 테스트 | 실행시간 | 메모리사용량 | 고루틴수 |\n")
		b.WriteString("|----------|--------|----------|--------------|----------|\n")
		for _, algo := range algorithms {
			for _, r := range results {
				if r.Algorithm == algo && r.DataSize == g.size && r.StorageType == g.storage {
					fmt.Fprintf(&b, "| %s | %d | %v | %d bytes | %d |\n",
						algoNames[algo], r.TestRun, r.Duration, r.MemoryUsage, r.GoroutineNum)
				}
			}
		}
		b.WriteString("\n")
	}

	b.WriteString("## 요약 통계\n\n")
	for _, g := range groups(results) {
		fmt.Fprintf(&b, "### %s - %d개 데이터\n\n", storageNames[g.storage], g.size)
		b.WriteString("| 알고리즘 | 평균 실행시간 | 중앙 실행시간 | 평균 메모리사용량 |\n")
		b.WriteString("|----------|---------------|---------------|-------------------|\n")

		for _, algo := range algorithms {
			var durations []time.Duration
			var totalDuration time.Duration
			var totalMemory uint64
			for _, r := range results {
				if r.Algorithm == algo && r.DataSize == g.size && r.StorageType == g.storage {
					durations = append(durations, r.Duration)
					totalDuration += r.Duration
					totalMemory += r.MemoryUsage
				}
			}
			if len(durations) == 0 {
				continue
			}

			median, err := medianDuration(durations)
			if err != nil {
				return "", err
			}
			n := len(durations)
			fmt.Fprintf(&b, "| %s | %v | %v | %d bytes |\n",
				algoNames[algo], totalDuration/time.Duration(n), median, totalMemory/uint64(n))
		}
		b.WriteString("\n")
	}
	return b.String(), nil
}

// saveResultsToMarkdown <prefix>.md
func saveResultsToMarkdown(results []BenchmarkResult, algorithms []string, prefix string) error {
	doc, err := renderMarkdown(results, algorithms, time.Now())
	if err != nil {
		return err
	}
	return errors.Wrap(os.WriteFile(prefix+".md", []byte(doc), 0o644), "write markdown report")
}

// saveResultsToJSON <prefix>.json
func saveResultsToJSON(v any, prefix string) error {
	file, err := os.Create(prefix + ".json")
	if err != nil {
		return errors.Wrap(err, "create json report")
	}
	defer file.Close()

	writer := bufio.NewWriterSize(file, 32*1024)
	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return errors.Wrap(err, "encode json report")
	}
	return errors.Wrap(writer.Flush(), "flush json report")
}
