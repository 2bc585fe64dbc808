package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/abhisek/quizforge/internal/retrieval"
	"github.com/spf13/cobra"
)

var docCmd = &cobra.Command{
	Use:   "doc",
	Short: "Generate questions grounded in a text document",
}

var docIndexCmd = &cobra.Command{
	Use:   "index <file>",
	Short: "Chunk a document and report index statistics",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		chunks, err := loadChunks(args[0])
		if err != nil {
			return err
		}

		total := 0
		for _, c := range chunks {
			total += utf8.RuneCountInString(c)
		}
		fmt.Printf("File:        %s\n", filepath.Base(args[0]))
		fmt.Printf("Chunks:      %d\n", len(chunks))
		fmt.Printf("Chunk size:  %d chars (overlap %d)\n", retrieval.DefaultChunkSize, retrieval.DefaultChunkOverlap)
		fmt.Printf("Total chars: %d\n", total)
		return nil
	},
}

var docAskCmd = &cobra.Command{
	Use:   "ask <file> <query>",
	Short: "Generate questions about a query, grounded in the document",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		file, query := args[0], args[1]
		topK, _ := cmd.Flags().GetInt("top-k")
		count, _ := cmd.Flags().GetInt("count")

		chunks, err := loadChunks(file)
		if err != nil {
			return err
		}

		retriever := retrieval.NewRetriever(newEmbedder())
		ctx := cmd.Context()
		if err := retriever.Index(ctx, chunks); err != nil {
			return fmt.Errorf("index document: %w", err)
		}

		scored, err := retriever.Query(ctx, query, topK)
		if err != nil {
			return fmt.Errorf("query index: %w", err)
		}
		if len(scored) == 0 {
			return fmt.Errorf("no relevant passages found for %q", query)
		}

		parts := make([]string, len(scored))
		for i, sc := range scored {
			parts[i] = sc.Chunk
		}

		req, err := buildRequest(cmd, query)
		if err != nil {
			return err
		}
		req.Context = strings.Join(parts, "\n\n")
		req.Query = query

		gen, cleanup, err := buildGenerator(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		questions := gen.GenerateBatch(ctx, req, count)
		if len(questions) == 0 {
			return fmt.Errorf("no questions could be generated for %q", query)
		}

		for i, q := range questions {
			printQuestion(i+1, q)
			fmt.Printf("   Answer: %s\n\n", q.Answer)
		}
		if len(questions) < count {
			fmt.Printf("Generated %d of %d requested questions.\n", len(questions), count)
		}
		return nil
	},
}

// loadChunks reads a plain-text file and splits it with the default
// chunking parameters.
func loadChunks(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	text := string(data)
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("document %s is empty", path)
	}
	return retrieval.Chunk(text, retrieval.DefaultChunkSize, retrieval.DefaultChunkOverlap), nil
}

// newEmbedder prefers OpenAI embeddings when a key is present and falls
// back to the offline hash embedder.
func newEmbedder() retrieval.Embedder {
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		if e, err := retrieval.NewOpenAIEmbedder(key, os.Getenv("QUIZFORGE_EMBED_MODEL")); err == nil {
			return e
		}
	}
	return &retrieval.HashEmbedder{}
}

func init() {
	docAskCmd.Flags().IntP("top-k", "k", 3, "Number of passages to retrieve")
	docAskCmd.Flags().IntP("count", "n", 1, "Number of questions to generate")
	docAskCmd.Flags().StringP("difficulty", "d", "medium", "Difficulty: easy, medium, or hard")
	docAskCmd.Flags().String("type", "choice", "Question type: choice or blank")

	docCmd.AddCommand(docIndexCmd)
	docCmd.AddCommand(docAskCmd)
}
