package driver

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"lust/internal/ast"
	"lust/internal/diag"
	"lust/internal/project"
	"lust/internal/source"
	"lust/internal/trace"
)

// FileResult содержит результат парсинга одного файла
type FileResult struct {
	Path    string        // путь как передан в ParseFiles
	FileID  source.FileID // ID файла в FileSet
	Program *ast.Program  // nil при попадании в кэш
	Bag     *diag.Bag     // Диагностики
	Errored bool
	Cached  bool
}

// ParseDir парсит все *.lust файлы в директории параллельно.
func ParseDir(ctx context.Context, dir string, opts Options) (*source.FileSet, []FileResult, error) {
	files, err := project.CollectSources(dir)
	if err != nil {
		return nil, nil, err
	}
	return ParseFiles(ctx, dir, files, opts)
}

// ParseFiles парсит files параллельно; results[i] соответствует files[i]
// независимо от порядка работы воркеров. Ошибка загрузки файла становится
// диагностикой IO4001, а не ошибкой вызова.
func ParseFiles(ctx context.Context, baseDir string, files []string, opts Options) (*source.FileSet, []FileResult, error) {
	fileSet := source.NewFileSetWithBase(baseDir)
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	ctx, dsp := trace.Start(ctx, trace.ScopeDriver, "parse-dir")
	dsp.WithExtra("files", fmt.Sprint(len(files)))
	defer dsp.End("")

	// FileSet не потокобезопасен — грузим всё заранее и последовательно
	_, lsp := trace.Start(ctx, trace.ScopePhase, "load")
	loadIdx := opts.Timer.Begin("load")
	fileIDs := make([]source.FileID, len(files))
	loadErrors := make([]error, len(files))
	for i, path := range files {
		fileID, err := fileSet.Load(path)
		if err != nil {
			loadErrors[i] = err
			// пустой виртуальный файл, чтобы диагностике было куда указать
			fileID = fileSet.AddVirtual(path, nil)
		}
		fileIDs[i] = fileID
		opts.Progress.emit(ProgressEvent{Index: i, Total: len(files), Path: path, Status: ProgressQueued})
	}
	opts.Timer.End(loadIdx, fmt.Sprintf("%d files", len(files)))
	lsp.End("")

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Результаты (индексы уникальны для каждой горутины, мьютекс не нужен)
	results := make([]FileResult, len(files))

	pctx, psp := trace.Start(ctx, trace.ScopePhase, "parse")
	parseIdx := opts.Timer.Begin("parse")
	g, gctx := errgroup.WithContext(pctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			opts.Progress.emit(ProgressEvent{Index: i, Total: len(files), Path: path, Status: ProgressStart})
			started := time.Now()

			res, err := parseOne(gctx, fileSet.Get(fileIDs[i]), loadErrors[i], opts)
			res.Path = path
			results[i] = res
			if err != nil {
				return err
			}

			elapsed := time.Since(started)
			if !res.Cached {
				opts.Timer.Add("parse file", elapsed)
			}
			opts.Progress.emit(ProgressEvent{
				Index: i, Total: len(files), Path: path, Status: ProgressDone,
				Errored: res.Errored, Cached: res.Cached, Elapsed: elapsed,
			})
			return nil
		})
	}

	err := g.Wait()
	opts.Timer.End(parseIdx, fmt.Sprintf("jobs=%d", jobs))
	psp.End("")
	return fileSet, results, err
}

func parseOne(ctx context.Context, file *source.File, loadErr error, opts Options) (FileResult, error) {
	res := FileResult{FileID: file.ID}
	if loadErr != nil {
		res.Bag = diag.NewBag(opts.MaxDiagnostics)
		res.Bag.Add(diag.NewError(diag.IOLoadFileError,
			source.Span{File: file.ID},
			"failed to load file: "+loadErr.Error()))
		res.Errored = true
		return res, nil
	}

	var key project.Digest
	if opts.Cache != nil {
		key = CacheKey(file, opts.MaxDiagnostics)
		var payload DiskPayload
		ok, err := opts.Cache.Get(key, &payload)
		switch {
		case err != nil:
			// битая запись — просто перепарсим
			trace.Point(trace.FromContext(ctx), trace.ScopeFile, "cache-error", err.Error(), trace.CurrentSpan(ctx))
		case ok:
			res.Bag = restoreBag(&payload, file.ID, opts.MaxDiagnostics)
			res.Errored = payload.Errored
			res.Cached = true
			return res, nil
		}
	}

	prog, bag, errored, err := parseFile(ctx, file, opts)
	res.Program, res.Bag, res.Errored = prog, bag, errored
	if err != nil {
		return res, err
	}
	if opts.Cache != nil {
		if perr := opts.Cache.Put(key, toPayload(file, bag, errored, len(prog.Stmts))); perr != nil {
			bag.Add(diag.New(diag.SevWarning, diag.IOCacheError, source.Span{File: file.ID},
				"failed to write parse cache: "+perr.Error()))
		}
	}
	return res, nil
}
