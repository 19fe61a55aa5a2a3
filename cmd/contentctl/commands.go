package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/yigit/forensicsite/internal/pkg/auth"
	"github.com/yigit/forensicsite/internal/pkg/confirm"
)

func (c *cli) realmsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "realms",
		Short: "List the pages and how their stored content loaded",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := c.open(cmd.Context())
			if err != nil {
				return err
			}
			defer e.close()

			w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "REALM\tSTATUS\tKEY\tSECTIONS")
			for _, page := range e.registry.Pages() {
				info := page.Info()
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", info.Name, page.Status(), info.StorageKey, strings.Join(info.Sections, ","))
			}
			return w.Flush()
		},
	}
}

func (c *cli) showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <realm> [section]",
		Short: "Print a page document or one of its sections",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := c.open(cmd.Context())
			if err != nil {
				return err
			}
			defer e.close()

			page, err := e.registry.Page(args[0])
			if err != nil {
				return err
			}
			var raw json.RawMessage
			if len(args) == 2 {
				raw, err = page.Section(args[1])
			} else {
				raw, err = page.Document()
			}
			if err != nil {
				return err
			}
			return writeJSON(c.out, raw)
		},
	}
}

func (c *cli) resetCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "reset <realm>",
		Short: "Overwrite a page with its default content",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := c.open(cmd.Context())
			if err != nil {
				return err
			}
			defer e.close()

			page, err := e.registry.Page(args[0])
			if err != nil {
				return err
			}

			var confirmer confirm.Confirmer = confirm.Terminal{In: c.in, Out: c.out}
			if yes {
				confirmer = confirm.Always
			}
			reset, persisted := page.ResetToDefault(cmd.Context(), confirmer)
			switch {
			case !reset:
				fmt.Fprintln(c.out, "Reset cancelled")
			case !persisted:
				return fmt.Errorf("defaults applied but not saved: %w", page.PersistError())
			default:
				fmt.Fprintf(c.out, "%s reset to defaults\n", page.Name())
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")
	return cmd
}

func (c *cli) exportCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "export <realm>",
		Short: "Write a page document as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := c.open(cmd.Context())
			if err != nil {
				return err
			}
			defer e.close()

			page, err := e.registry.Page(args[0])
			if err != nil {
				return err
			}
			raw, err := page.Document()
			if err != nil {
				return err
			}
			if output == "" {
				return writeJSON(c.out, raw)
			}

			file, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			if err := writeJSON(file, raw); err != nil {
				file.Close()
				return fmt.Errorf("write %s: %w", output, err)
			}
			if err := file.Close(); err != nil {
				return err
			}
			fmt.Fprintf(c.out, "%s exported to %s\n", page.Name(), output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "file to write instead of stdout")
	return cmd
}

func (c *cli) importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <realm> <file>",
		Short: "Replace a page document with the JSON in file",
		Long:  "The file is merged onto the page defaults the same way stored content is, so missing sections keep their default value.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[1])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[1], err)
			}

			e, err := c.open(cmd.Context())
			if err != nil {
				return err
			}
			defer e.close()

			page, err := e.registry.Page(args[0])
			if err != nil {
				return err
			}
			persisted, err := page.Import(cmd.Context(), raw)
			if err != nil {
				return err
			}
			if !persisted {
				return fmt.Errorf("document imported but not saved: %w", page.PersistError())
			}
			fmt.Fprintf(c.out, "%s imported from %s\n", page.Name(), args[1])
			return nil
		},
	}
}

func (c *cli) hashPasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password",
		Short: "Read a password from stdin and print its bcrypt hash for editor.password_hash",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			line, err := bufio.NewReader(c.in).ReadString('\n')
			password := strings.TrimRight(line, "\r\n")
			if password == "" {
				if err != nil && !errors.Is(err, io.EOF) {
					return err
				}
				return errors.New("no password given on stdin")
			}
			hash, err := auth.HashPassword(password)
			if err != nil {
				return err
			}
			fmt.Fprintln(c.out, hash)
			return nil
		},
	}
}

func writeJSON(w io.Writer, raw json.RawMessage) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return err
	}
	buf.WriteByte('\n')
	_, err := w.Write(buf.Bytes())
	return err
}
