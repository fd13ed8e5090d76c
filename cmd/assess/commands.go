package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/NeuralTrust/TrustAssess/pkg/handlers/http/request"
	"github.com/NeuralTrust/TrustAssess/pkg/infra/corpusfile"
	"github.com/NeuralTrust/TrustAssess/pkg/riskengine"
	"github.com/NeuralTrust/TrustAssess/pkg/version"
	"github.com/spf13/cobra"
)

type cliOptions struct {
	corpusFile string
	baseScore  int
	asYAML     bool
}

func newRootCmd() *cobra.Command {
	opts := &cliOptions{}

	root := &cobra.Command{
		Use:          "assess",
		Short:        "Offline EU AI Act risk assessment of conversation transcripts",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&opts.corpusFile, "corpus", "", "keyword corpus YAML file (defaults to the built-in corpus)")
	root.PersistentFlags().IntVar(&opts.baseScore, "base-score", riskengine.DefaultBaseScore, "score every conversation starts from")

	root.AddCommand(newRunCmd(opts), newCorpusCmd(opts), newVersionCmd())
	return root
}

func newRunCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "run <transcript.json|->",
		Short: "Assess a transcript file and print the verdict as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := readTranscript(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}
			corpus, err := loadCorpus(opts.corpusFile)
			if err != nil {
				return err
			}
			assessor := riskengine.NewAssessor(
				riskengine.NewCorpusStore(corpus),
				riskengine.WithBaseScore(opts.baseScore),
			)
			return writeJSON(cmd.OutOrStdout(), assessor.Assess(req.Transcript()))
		},
	}
}

func newCorpusCmd(opts *cliOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "corpus",
		Short: "Print the active keyword corpus summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			corpus, err := loadCorpus(opts.corpusFile)
			if err != nil {
				return err
			}
			if opts.asYAML {
				data, err := corpusfile.Marshal(corpus)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			assessor := riskengine.NewAssessor(
				riskengine.NewCorpusStore(corpus),
				riskengine.WithBaseScore(opts.baseScore),
			)
			return writeJSON(cmd.OutOrStdout(), riskengine.Summarize(corpus, assessor.Config()))
		},
	}
	cmd.Flags().BoolVar(&opts.asYAML, "yaml", false, "print the full corpus as a loadable YAML document")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), version.GetInfo().String())
		},
	}
}

func readTranscript(stdin io.Reader, path string) (*request.AssessRequest, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(filepath.Clean(path))
	}
	if err != nil {
		return nil, fmt.Errorf("read transcript: %w", err)
	}

	var req request.AssessRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("decode transcript: %w", err)
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return &req, nil
}

func loadCorpus(path string) (*riskengine.Corpus, error) {
	if path == "" {
		return riskengine.DefaultCorpus(), nil
	}
	return corpusfile.Load(path)
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
