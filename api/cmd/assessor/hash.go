package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"content-assessor/api/internal/fingerprint"
)

// hashCmd recomputes the fingerprint of assessed content so a third party
// can check an attestation's contentHash offline.
var hashCmd = &cobra.Command{
	Use:   "hash [file]",
	Short: "Print the contentHash and CID of a file or stdin",
	Long: `Reads the content exactly as it was submitted (no trimming or normalization)
from the given file, or from stdin when no file is given, and prints the
SHA-256 contentHash followed by its CIDv1.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHash,
}

func runHash(cmd *cobra.Command, args []string) error {
	var (
		b   []byte
		err error
	)
	if len(args) == 1 {
		b, err = os.ReadFile(args[0])
	} else {
		b, err = io.ReadAll(cmd.InOrStdin())
	}
	if err != nil {
		return fmt.Errorf("read content: %w", err)
	}

	content := string(b)
	fmt.Fprintf(cmd.OutOrStdout(), "contentHash: %s\ncid:         %s\n",
		fingerprint.ContentHash(content), fingerprint.ContentCID(content))
	return nil
}
