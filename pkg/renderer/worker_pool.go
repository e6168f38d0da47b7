package renderer

import (
	"runtime"
	"sync"

	"github.com/sevetis/ray-tracer/pkg/geometry"
)

// RowTask is a contiguous band of image rows [StartRow, EndRow)
type RowTask struct {
	TaskID   int // For deterministic ordering
	StartRow int
	EndRow   int
}

// RowResult contains the result from rendering a band of rows
type RowResult struct {
	TaskID int
	Rows   int
	Stats  RenderStats
}

// WorkerPool manages parallel row rendering
type WorkerPool struct {
	taskQueue   chan RowTask
	resultQueue chan RowResult
	workers     []*Worker
	numWorkers  int
	wg          sync.WaitGroup
}

// Worker handles individual row band rendering tasks
type Worker struct {
	ID          int
	raytracer   *Raytracer
	world       geometry.Shape
	frame       *Frame
	taskQueue   chan RowTask
	resultQueue chan RowResult
}

// NewWorkerPool creates a worker pool with the specified number of workers.
// Workers share the read-only world and write disjoint rows of frame.
func NewWorkerPool(raytracer *Raytracer, world geometry.Shape, frame *Frame, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	// No point in more workers than rows
	numWorkers = max(1, min(numWorkers, frame.Height))

	wp := &WorkerPool{
		taskQueue:   make(chan RowTask, frame.Height),   // Buffer for all possible tasks
		resultQueue: make(chan RowResult, frame.Height), // Buffer for all possible results
		numWorkers:  numWorkers,
	}

	for i := 0; i < numWorkers; i++ {
		worker := &Worker{
			ID:          i,
			raytracer:   raytracer,
			world:       world,
			frame:       frame,
			taskQueue:   wp.taskQueue,
			resultQueue: wp.resultQueue,
		}
		wp.workers = append(wp.workers, worker)
	}

	return wp
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(&wp.wg)
	}
}

// Stop closes the task queue and waits for workers to drain it
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue) // No more tasks
	wp.wg.Wait()        // Wait for workers to finish
	close(wp.resultQueue)
}

// SubmitTask submits a row task to the worker pool
func (wp *WorkerPool) SubmitTask(task RowTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed row result
func (wp *WorkerPool) GetResult() (RowResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (w *Worker) run(wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.taskQueue {
		// Each task owns its rows, so writes to the shared frame never overlap
		stats := w.raytracer.RenderRows(w.world, w.frame, task.StartRow, task.EndRow)

		w.resultQueue <- RowResult{
			TaskID: task.TaskID,
			Rows:   task.EndRow - task.StartRow,
			Stats:  stats,
		}
	}
}

// SplitRows partitions [0, height) into at most parts contiguous bands of near-equal size
func SplitRows(height, parts int) []RowTask {
	if height <= 0 {
		return nil
	}
	parts = max(1, min(parts, height))

	tasks := make([]RowTask, 0, parts)
	start := 0
	for i := 0; i < parts; i++ {
		// Spread the remainder over the first bands
		size := height / parts
		if i < height%parts {
			size++
		}
		tasks = append(tasks, RowTask{TaskID: i, StartRow: start, EndRow: start + size})
		start += size
	}
	return tasks
}
