package main

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/awnumar/memguard"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-token-agent/internal/ipc"
	"github.com/MKhiriev/go-token-agent/internal/logger"
	"github.com/MKhiriev/go-token-agent/internal/prompt"
	"github.com/MKhiriev/go-token-agent/internal/service"
	"github.com/MKhiriev/go-token-agent/internal/workers"
	"github.com/MKhiriev/go-token-agent/models"
)

const (
	lockPrompt   = "Enter lock Password: "
	unlockPrompt = "Enter unlock Password: "
)

const agentHelp = `commands:
  load <name> [ttl]        decrypt a stored account and keep it loaded
  list                     show loaded accounts
  token <name>             print the access token of a loaded account
  seal <name> <peer-pub>   seal the access token for an IPC peer
  pubkey                   print the agent IPC public key
  remove <name>            forget a loaded account
  lock | unlock            lock or unlock every loaded account
  status                   show the agent state
  quit                     stop the agent
`

var errUsage = errors.New("usage")

var agentCommands = map[string]bool{
	"quit": true, "exit": true, "help": true, "status": true, "pubkey": true,
	"list": true, "load": true, "token": true, "seal": true, "remove": true,
	"lock": true, "unlock": true,
}

func newAgentCmd(a *app) *cobra.Command {
	var ttl time.Duration

	cmd := &cobra.Command{
		Use:   "agent [short-name...]",
		Short: "Run the agent with an interactive command loop",
		Long: `Run the agent. The named accounts are loaded at start; more can be loaded
from the command loop. Loaded credentials stay obfuscated in memory, expired
accounts are evicted in the background and the whole agent can be locked
under a password. Type "help" for the list of commands.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.setup(cmd)
			if err != nil {
				return err
			}

			keys, err := ipc.GenerateKeyPair()
			if err != nil {
				return err
			}
			defer memguard.WipeBytes(keys.Private[:])

			sess := newAgentSession(s, keys, ttl, cmd.OutOrStdout(), prompt.NewColorReporterTo(cmd.ErrOrStderr()), a.log)
			for _, name := range args {
				if err = sess.load(cmd.Context(), name, ttl); err != nil {
					return err
				}
			}

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			w := workers.NewWorkers(workers.NewEvictionWorker(s.Agent, a.cfg.Agent.EvictInterval, a.log))
			done := make(chan struct{})
			go func() {
				w.Run(ctx)
				close(done)
			}()

			err = sess.run(ctx, cmd.InOrStdin())
			cancel()
			<-done
			return err
		},
	}
	cmd.Flags().DurationVar(&ttl, "ttl", 0, "default lifetime of loaded accounts (0 keeps them until removed)")
	return cmd
}

// agentSession executes command lines against a running agent.
type agentSession struct {
	services *service.Services
	keys     ipc.KeyPair
	ttl      time.Duration
	out      io.Writer
	reporter prompt.Reporter
	now      func() time.Time
	logger   *logger.Logger
}

func newAgentSession(s *service.Services, keys ipc.KeyPair, ttl time.Duration, out io.Writer, reporter prompt.Reporter, log *logger.Logger) *agentSession {
	return &agentSession{
		services: s,
		keys:     keys,
		ttl:      ttl,
		out:      out,
		reporter: reporter,
		now:      time.Now,
		logger:   log,
	}
}

// run reads commands from in until quit, end of input or ctx is done.
// Command errors are reported and the loop goes on.
//
// Lines are read one at a time and only while no command is running, so a
// password prompt sharing in gets every byte typed after its command.
func (s *agentSession) run(ctx context.Context, in io.Reader) error {
	type readResult struct {
		line string
		err  error
	}

	fmt.Fprintf(s.out, "agent ready, ipc public key %s\n", base64.StdEncoding.EncodeToString(s.keys.Public[:]))
	for ctx.Err() == nil {
		next := make(chan readResult, 1)
		go func() {
			line, err := readLine(in)
			next <- readResult{line: line, err: err}
		}()

		select {
		case <-ctx.Done():
			return nil
		case r := <-next:
			if errors.Is(r.err, io.EOF) {
				return nil
			}
			if r.err != nil {
				return fmt.Errorf("read command: %w", r.err)
			}
			quit, err := s.handle(ctx, r.line)
			if err != nil {
				s.reporter.ReportError(err)
			}
			if quit {
				return nil
			}
		}
	}
	return nil
}

// readLine reads a single line from r without consuming anything past its
// newline. A final line without a newline is returned before io.EOF.
func readLine(r io.Reader) (string, error) {
	var (
		line []byte
		b    [1]byte
	)
	for {
		n, err := r.Read(b[:])
		if n == 1 {
			if b[0] == '\n' {
				return strings.TrimSuffix(string(line), "\r"), nil
			}
			line = append(line, b[0])
		}
		if err != nil {
			if errors.Is(err, io.EOF) && len(line) > 0 {
				return string(line), nil
			}
			return "", err
		}
	}
}

// handle executes one command line and reports whether the loop must stop.
func (s *agentSession) handle(ctx context.Context, line string) (bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}
	cmd, args := fields[0], fields[1:]
	if !agentCommands[cmd] {
		// the line is not echoed, it may be a mistyped secret
		return false, fmt.Errorf("%w: unknown command, type help", errUsage)
	}
	s.logger.Debug().Str("command", cmd).Int("args", len(args)).Msg("agent command")

	switch cmd {
	case "quit", "exit":
		return true, nil
	case "help":
		fmt.Fprint(s.out, agentHelp)
		return false, nil
	case "status":
		return false, s.status()
	case "pubkey":
		fmt.Fprintln(s.out, base64.StdEncoding.EncodeToString(s.keys.Public[:]))
		return false, nil
	case "list":
		return false, s.list()
	case "load":
		return false, s.loadCmd(ctx, args)
	case "token":
		if len(args) != 1 {
			return false, fmt.Errorf("%w: token <name>", errUsage)
		}
		return false, s.token(args[0])
	case "seal":
		if len(args) != 2 {
			return false, fmt.Errorf("%w: seal <name> <peer-public>", errUsage)
		}
		return false, s.seal(args[0], args[1])
	case "remove":
		if len(args) != 1 {
			return false, fmt.Errorf("%w: remove <name>", errUsage)
		}
		return false, s.remove(args[0])
	case "lock":
		return false, s.lock(ctx)
	case "unlock":
		return false, s.unlock(ctx)
	default:
		return false, fmt.Errorf("%w: unknown command, type help", errUsage)
	}
}

func (s *agentSession) status() error {
	agent := s.services.Agent
	fmt.Fprintf(s.out, "state: %s, accounts: %d, failed unlocks: %d\n",
		agent.State(), len(agent.Loaded()), agent.FailedUnlocks())
	return nil
}

func (s *agentSession) list() error {
	for _, id := range s.services.Agent.Loaded() {
		fmt.Fprintf(s.out, "%s\t%s\n", id.ShortName, id.IssuerURL)
	}
	return nil
}

func (s *agentSession) loadCmd(ctx context.Context, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("%w: load <name> [ttl]", errUsage)
	}
	ttl := s.ttl
	if len(args) == 2 {
		d, err := time.ParseDuration(args[1])
		if err != nil {
			return fmt.Errorf("%w: ttl: %v", errUsage, err)
		}
		ttl = d
	}
	return s.load(ctx, args[0], ttl)
}

// load decrypts the stored configuration name, prompting for its password,
// and hands the account to the agent.
func (s *agentSession) load(ctx context.Context, name string, ttl time.Duration) error {
	if s.services.Agent.State() == service.StateLocked {
		return service.ErrAgentLocked
	}

	acc, err := s.services.AccountConfigs.Load(ctx, name, nil)
	if err != nil {
		return err
	}
	if ttl > 0 {
		acc.DeathTime = s.now().Add(ttl)
	}

	if err = s.services.Agent.Add(acc); err != nil {
		acc.Destroy()
		return err
	}
	fmt.Fprintf(s.out, "account %s loaded\n", name)
	return nil
}

func (s *agentSession) token(name string) error {
	return s.services.Agent.Use(name, func(acc *models.Account) error {
		_, err := fmt.Fprintf(s.out, "%s\n", acc.AccessToken.Value())
		return err
	})
}

// seal encrypts the access token of name for the peer owning peerPublic.
func (s *agentSession) seal(name, peerPublic string) error {
	peer, err := decodeKey("peer-public", peerPublic)
	if err != nil {
		return err
	}
	key, err := ipc.SharedKey(peer, s.keys.Private)
	if err != nil {
		return err
	}
	defer memguard.WipeBytes(key[:])

	return s.services.Agent.Use(name, func(acc *models.Account) error {
		sealed, err := s.services.IPC.EncryptForIPC(acc.AccessToken.Value(), key)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(s.out, sealed)
		return err
	})
}

func (s *agentSession) remove(name string) error {
	if err := s.services.Agent.Remove(name); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "account %s removed\n", name)
	return nil
}

func (s *agentSession) lock(ctx context.Context) error {
	if s.services.Agent.State() == service.StateLocked {
		return service.ErrAgentLocked
	}

	pw, err := s.services.Prompter.PromptPassword(ctx, lockPrompt)
	if err != nil {
		return err
	}
	defer pw.Destroy()

	if err = s.services.Agent.Lock(pw.Bytes()); err != nil {
		return err
	}
	fmt.Fprintln(s.out, "agent locked")
	return nil
}

func (s *agentSession) unlock(ctx context.Context) error {
	if s.services.Agent.State() != service.StateLocked {
		return service.ErrAgentNotLocked
	}

	pw, err := s.services.Prompter.PromptPassword(ctx, unlockPrompt)
	if err != nil {
		return err
	}
	defer pw.Destroy()

	if err = s.services.Agent.Unlock(pw.Bytes()); err != nil {
		return err
	}
	fmt.Fprintln(s.out, "agent unlocked")
	return nil
}
