// Package ladder преобразует строки языка правил
// в текст релейной логики для выбранной платформы ПЛК.
package ladder

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/GDVFox/ladderlogic/ladder/dialect"
	"github.com/GDVFox/ladderlogic/ladder/parser"
	"github.com/GDVFox/ladderlogic/ladder/recognizer"
	"github.com/GDVFox/ladderlogic/ladder/render"
	"github.com/GDVFox/ladderlogic/ladder/rung"
)

// CommentMarker маркер строки-комментария во входном файле правил.
const CommentMarker = "#"

// LineResult результат преобразования одной строки правила.
// Line содержит номер строки входного файла начиная с единицы.
// При ошибке Block пуст: частичный вывод для ошибочной строки не выдается.
type LineResult struct {
	Line  int
	Block string
	Err   error
}

// Skipped возвращает true, если строка не содержит правила:
// пустая после обрезки пробелов или начинается с маркера комментария.
func Skipped(line string) bool {
	trimmed := strings.TrimSpace(line)
	return trimmed == "" || strings.HasPrefix(trimmed, CommentMarker)
}

// ConvertLine преобразует одну строку правила в текстовый блок звена.
func ConvertLine(line string, d *dialect.Dialect) (string, error) {
	analyzer := parser.NewSyntaxAnalyzer(recognizer.NewLexicalRecognizer(line))
	statement, err := analyzer.Parse()
	if err != nil {
		return "", err
	}

	builtRung, err := rung.NewBuilder(statement).Build()
	if err != nil {
		return "", err
	}

	return render.Render(builtRung, d), nil
}

// Convert последовательно преобразует строки правил.
// Ошибка в строке не прерывает обработку остальных строк:
// каждая строка дает ровно один результат, пропуская пустые и комментарии.
func Convert(lines []string, d *dialect.Dialect) []LineResult {
	results := make([]LineResult, 0, len(lines))
	for i, line := range lines {
		if Skipped(line) {
			continue
		}

		block, err := ConvertLine(line, d)
		results = append(results, LineResult{
			Line:  i + 1,
			Block: block,
			Err:   err,
		})
	}
	return results
}

// ConvertContext преобразует строки правил параллельно в workers потоков.
// Преобразование строки является чистой функцией от (строка, диалект),
// поэтому параллельная обработка не меняет результат; порядок результатов
// совпадает с порядком строк во входе. Ошибка возвращается только
// при отмене контекста.
func ConvertContext(ctx context.Context, lines []string, d *dialect.Dialect, workers int) ([]LineResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if workers <= 1 {
		return Convert(lines, d), nil
	}

	type job struct {
		index int
		line  int
		text  string
	}

	jobs := make([]job, 0, len(lines))
	for i, line := range lines {
		if Skipped(line) {
			continue
		}
		jobs = append(jobs, job{index: len(jobs), line: i + 1, text: line})
	}

	results := make([]LineResult, len(jobs))
	jobsChannel := make(chan job)

	wg, convertCtx := errgroup.WithContext(ctx)
	wg.Go(func() error {
		defer close(jobsChannel)
		for _, j := range jobs {
			select {
			case jobsChannel <- j:
			case <-convertCtx.Done():
				return convertCtx.Err()
			}
		}
		return nil
	})

	for i := 0; i < workers; i++ {
		wg.Go(func() error {
			for {
				select {
				case j, ok := <-jobsChannel:
					if !ok {
						return nil
					}
					block, err := ConvertLine(j.text, d)
					results[j.index] = LineResult{
						Line:  j.line,
						Block: block,
						Err:   err,
					}
				case <-convertCtx.Done():
					return convertCtx.Err()
				}
			}
		})
	}

	if err := wg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
