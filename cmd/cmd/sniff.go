package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/gosniff/imghdr/pkg/imghdr"
	"github.com/gosniff/imghdr/pkg/util/format"
)

func DefineSniffCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sniff",
		Short: "Guess the image format of bytes read from stdin",
		Args:  cobra.NoArgs,
		RunE:  RunSniff,
	}

	cmd.Flags().String("header-size", "", "number of leading bytes to inspect")
	return cmd
}

func RunSniff(cmd *cobra.Command, args []string) error {
	sniffer, err := newSniffer(cmd)
	if err != nil {
		return err
	}

	header := make([]byte, sniffer.HeaderSize())
	n, err := io.ReadFull(cmd.InOrStdin(), header)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return err
	}

	guess, ok := sniffer.Sniff(header[:n])
	if !ok {
		guess = "unknown"
	}
	fmt.Println(guess)
	return nil
}

// newSniffer builds a Sniffer honoring the shared --header-size flag.
func newSniffer(cmd *cobra.Command) (*imghdr.Sniffer, error) {
	sniffer := imghdr.NewSniffer()

	s, _ := cmd.Flags().GetString("header-size")
	if s == "" {
		return sniffer, nil
	}

	n, err := format.ParseBytes(s)
	if err != nil {
		return nil, fmt.Errorf("invalid header size: %w", err)
	}
	sniffer.SetHeaderSize(int(n))
	return sniffer, nil
}
