// Command quizbrief summarizes a text and prints quiz questions generated from
// the summary as JSON.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"quiz-brief/internal/adapter/llm"
	"quiz-brief/internal/config"
	"quiz-brief/internal/domain"
	"quiz-brief/internal/logger"
	"quiz-brief/internal/service"

	"go.uber.org/zap"
)

const sampleText = "According to the Olympic Foundation for Culture and Heritage, the U.S. led the all-time medal count going into the Paris Games with a total of 2,975 Olympic medals, followed by the now-defunct Soviet Union, with 1,204 medals, and Germany, with 1,058 medals. And, as hoped, the U.S. added to its medal haul at the 2024 Games, topping 3,000 total medals within the first week of competition. The American team is helped by the sheer number of competitors representing Team USA at the Paris Games: 594 athletes, of the about 10,500 athletes competing. Four countries in this year's games have only one athlete taking a shot at medal glory: Belize, Liechtenstein, Nauru and Somalia. And since Russia was banned for this year's games, any medals garnered by its few athletes competing as individual neutral athletes won't be tallied as part of the country's overall haul. The first individual neutral athlete to medal in the Games was Viyaleta Bardzilouskaya of Belarus, who took silver in women's trampoline."

type result struct {
	Summary   string            `json:"summary"`
	Questions []domain.Question `json:"questions"`
}

func main() {
	file := flag.String("file", "", "read the source text from this file (\"-\" for stdin)")
	text := flag.String("text", "", "source text")
	flag.Parse()

	if err := run(*file, *text, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "quizbrief: %v\n", err)
		os.Exit(1)
	}
}

func run(file, text string, stdin io.Reader, stdout io.Writer) error {
	source, err := readSource(file, text, stdin)
	if err != nil {
		return err
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	if err := logger.Initialize(cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, err := llm.NewGeminiCompletionClient(ctx, cfg.Gemini, logger.Get())
	if err != nil {
		return err
	}

	out, err := summarizeAndQuiz(ctx, service.NewSummarizer(client), service.NewQuizGenerator(client), source)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func summarizeAndQuiz(ctx context.Context, summarizer domain.Summarizer, generator domain.QuizGenerator, source string) (*result, error) {
	summary, err := summarizer.Summarize(ctx, source)
	if err != nil {
		return nil, err
	}
	logger.Get().Debug("Summary generated", zap.Int("chars", len(summary)))

	questions, err := generator.GenerateQuestions(ctx, summary)
	if err != nil {
		return nil, err
	}
	return &result{Summary: summary, Questions: questions}, nil
}

// readSource picks -text, then -file, then the built-in sample passage.
func readSource(file, text string, stdin io.Reader) (string, error) {
	if text != "" {
		return text, nil
	}
	switch file {
	case "":
		return sampleText, nil
	case "-":
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(b), nil
	default:
		b, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", file, err)
		}
		return string(b), nil
	}
}
