package main

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/awnumar/memguard"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-token-agent/internal/crypto"
	"github.com/MKhiriev/go-token-agent/internal/ipc"
)

func newIPCCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ipc",
		Short: "Seal and open messages exchanged with the agent",
		Long: `Seal and open single IPC messages. Both peers derive the same key from
their own private key and the other side's public key; keys are printed and
accepted as standard base64.`,
	}
	cmd.AddCommand(newIPCKeygenCmd(), newIPCSealCmd(a), newIPCOpenCmd(a))
	return cmd
}

func newIPCKeygenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keygen",
		Short: "Generate a key pair for one side of the channel",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			kp, err := ipc.GenerateKeyPair()
			if err != nil {
				return err
			}
			defer memguard.WipeBytes(kp.Private[:])

			fmt.Fprintf(cmd.OutOrStdout(), "public: %s\nprivate: %s\n",
				base64.StdEncoding.EncodeToString(kp.Public[:]),
				base64.StdEncoding.EncodeToString(kp.Private[:]))
			return nil
		},
	}
}

// ipcKeyFlags are the key flags shared by seal and open.
type ipcKeyFlags struct {
	peerPublic string
	private    string
}

func (f *ipcKeyFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.peerPublic, "peer-public", "", "public key of the other side")
	cmd.Flags().StringVar(&f.private, "private", "", "own private key")
	_ = cmd.MarkFlagRequired("peer-public")
	_ = cmd.MarkFlagRequired("private")
}

func (f *ipcKeyFlags) sharedKey() (*[crypto.KeySize]byte, error) {
	peer, err := decodeKey("peer-public", f.peerPublic)
	if err != nil {
		return nil, err
	}
	own, err := decodeKey("private", f.private)
	if err != nil {
		return nil, err
	}
	defer memguard.WipeBytes(own[:])

	return ipc.SharedKey(peer, own)
}

var errInvalidKey = errors.New("invalid ipc key")

func decodeKey(name, s string) (*[crypto.KeySize]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("%w: --%s is not base64: %v", errInvalidKey, name, err)
	}
	if len(raw) != crypto.KeySize {
		return nil, fmt.Errorf("%w: --%s must be %d bytes", errInvalidKey, name, crypto.KeySize)
	}

	var key [crypto.KeySize]byte
	copy(key[:], raw)
	memguard.WipeBytes(raw)
	return &key, nil
}

func newIPCSealCmd(a *app) *cobra.Command {
	var keys ipcKeyFlags

	cmd := &cobra.Command{
		Use:   "seal",
		Short: "Seal a message read from stdin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.setup(cmd)
			if err != nil {
				return err
			}

			key, err := keys.sharedKey()
			if err != nil {
				return err
			}
			defer memguard.WipeBytes(key[:])

			msg, err := readInput(cmd, "")
			if err != nil {
				return fmt.Errorf("read message: %w", err)
			}
			defer memguard.WipeBytes(msg)

			sealed, err := s.IPC.EncryptForIPC(msg, key)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), sealed)
			return nil
		},
	}
	keys.bind(cmd)
	return cmd
}

func newIPCOpenCmd(a *app) *cobra.Command {
	var keys ipcKeyFlags

	cmd := &cobra.Command{
		Use:   "open [envelope]",
		Short: "Open a sealed message given as argument or on stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.setup(cmd)
			if err != nil {
				return err
			}

			key, err := keys.sharedKey()
			if err != nil {
				return err
			}
			defer memguard.WipeBytes(key[:])

			var sealed string
			if len(args) == 1 {
				sealed = args[0]
			} else {
				raw, err := readInput(cmd, "")
				if err != nil {
					return fmt.Errorf("read envelope: %w", err)
				}
				sealed = string(raw)
			}

			msg, err := s.IPC.DecryptForIPC(strings.TrimSpace(sealed), key)
			if err != nil {
				return err
			}
			defer memguard.WipeBytes(msg)

			_, err = cmd.OutOrStdout().Write(msg)
			return err
		},
	}
	keys.bind(cmd)
	return cmd
}
