package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"fspgen/internal/bench"
	"fspgen/internal/config"
	"fspgen/internal/generator"
	"fspgen/internal/report"
	"fspgen/internal/rng"
)

type options struct {
	configPath string
	format     string
	out        string
	stats      bool
	verbose    bool

	durationLB  int
	durationUB  int
	halfWidthLB int
	halfWidthUB int
	alpha       float64
	noise       int
}

func newRootCmd() *cobra.Command {
	var o options
	def := generator.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "fspgen <type> <jobs> <machines> <seed> [key=value ...]",
		Short: "Генератор тестовых экземпляров задачи flow-shop с нижними оценками makespan.",
		Long: "Генерирует экземпляр перестановочной задачи flow-shop и печатает нижние оценки Тайярда и\n" +
			"пропорциональную. Типы: " + strategyList() + ".\n" +
			"Сид 0 - сид берётся из текущего времени. Опции key=value: durationLB, durationUB,\n" +
			"distHalfWidthLB, distHalfWidthUB, alpha, durationNoise (старая форма -key=value - после \"--\").",
		SilenceUsage: true,
		Args:         cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, o)
		},
	}

	f := cmd.Flags()
	f.StringVar(&o.configPath, "config", "", "YAML-файл с опциями генерации")
	f.StringVar(&o.format, "format", "text", "формат вывода: text | csv | yaml")
	f.StringVar(&o.out, "out", "", "путь к выходному файлу (обязателен для csv)")
	f.BoolVar(&o.stats, "stats", false, "добавить статистику длительностей (для text)")
	f.BoolVarP(&o.verbose, "verbose", "v", false, "писать шаги генерации в stderr")

	f.IntVar(&o.durationLB, config.KeyDurationLB, def.DurationLB, "нижняя граница длительности операции")
	f.IntVar(&o.durationUB, config.KeyDurationUB, def.DurationUB, "верхняя граница длительности операции")
	f.IntVar(&o.halfWidthLB, config.KeyHalfWidthLB, def.HalfWidthLB, "минимальная полуширина скрытого распределения")
	f.IntVar(&o.halfWidthUB, config.KeyHalfWidthUB, def.HalfWidthUB, "максимальная полуширина скрытого распределения")
	f.Float64Var(&o.alpha, config.KeyAlpha, def.Alpha, "сила корреляции (доля интервала для средних), >= 0")
	f.IntVar(&o.noise, config.KeyNoise, def.Noise, "амплитуда шума для mixed-correlated, >= 0")

	return cmd
}

func run(cmd *cobra.Command, args []string, o options) error {
	logger := zap.NewNop()
	if o.verbose {
		logger = newLogger(cmd.ErrOrStderr())
	}
	defer logger.Sync() //nolint:errcheck

	c, err := resolveCase(cmd, args, o)
	if err != nil {
		return err
	}
	logger.Debug("generating instance",
		zap.String("strategy", string(c.Config.Strategy)),
		zap.Int("jobs", c.Config.Jobs),
		zap.Int("machines", c.Config.Machines),
		zap.Int64("seed", c.Seed),
		zap.Int("durationLB", c.Config.DurationLB),
		zap.Int("durationUB", c.Config.DurationUB))

	res, err := bench.Build(c)
	if err != nil {
		logger.Error("generation failed", zap.Error(err))
		return fmt.Errorf("не удалось сгенерировать экземпляр: %w", err)
	}
	logger.Debug("lower bounds",
		zap.Int64("taillard", res.Bounds.Taillard),
		zap.Int64("proportionate", res.Bounds.Proportionate),
		zap.Int64("best", res.Bounds.Best))

	switch o.format {
	case "text":
		return report.WriteText(cmd.OutOrStdout(), res, o.stats)
	case "yaml":
		return report.WriteYAML(cmd.OutOrStdout(), res)
	case "csv":
		if o.out == "" {
			return fmt.Errorf("для формата csv нужен --out")
		}
		if err := report.WriteCSV(o.out, res); err != nil {
			return fmt.Errorf("ошибка при записи в CSV: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Saved: %s (lower bound %d, seed %d)\n", o.out, res.Bounds.Best, res.Case.Seed)
		return nil
	default:
		return fmt.Errorf("неизвестный формат %q; доступные: text, csv, yaml", o.format)
	}
}

// newLogger пишет отладочные сообщения в w в консольном формате, без времени.
func newLogger(w io.Writer) *zap.Logger {
	enc := zap.NewDevelopmentEncoderConfig()
	enc.TimeKey = ""
	enc.CallerKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(w), zapcore.DebugLevel)
	return zap.New(core).Named("fspgen")
}

// resolveCase layers defaults, the YAML file, positional arguments,
// key=value options and explicitly set flags, in that order.
func resolveCase(cmd *cobra.Command, args []string, o options) (bench.Case, error) {
	cfg := generator.DefaultConfig()
	var seed int64

	if o.configPath != "" {
		file, err := config.Load(o.configPath)
		if err != nil {
			return bench.Case{}, err
		}
		file.Apply(&cfg, &seed)
	}

	var positional, tokens []string
	for _, a := range args {
		if strings.Contains(a, "=") {
			tokens = append(tokens, a)
		} else {
			positional = append(positional, a)
		}
	}
	if err := applyPositional(positional, &cfg, &seed); err != nil {
		return bench.Case{}, err
	}

	file, err := config.ParseOptions(tokens)
	if err != nil {
		return bench.Case{}, err
	}
	file.Apply(&cfg, &seed)

	fl := cmd.Flags()
	if fl.Changed(config.KeyDurationLB) {
		cfg.DurationLB = o.durationLB
	}
	if fl.Changed(config.KeyDurationUB) {
		cfg.DurationUB = o.durationUB
	}
	if fl.Changed(config.KeyHalfWidthLB) {
		cfg.HalfWidthLB = o.halfWidthLB
	}
	if fl.Changed(config.KeyHalfWidthUB) {
		cfg.HalfWidthUB = o.halfWidthUB
	}
	if fl.Changed(config.KeyAlpha) {
		cfg.Alpha = o.alpha
	}
	if fl.Changed(config.KeyNoise) {
		cfg.Noise = o.noise
	}

	if _, err := generator.ParseStrategy(string(cfg.Strategy)); err != nil {
		return bench.Case{}, err
	}
	if seed < 0 {
		return bench.Case{}, fmt.Errorf("сид не может быть отрицательным (получено %d)", seed)
	}
	if seed == 0 {
		seed = clockSeed(time.Now())
	}
	return bench.Case{Config: cfg, Seed: seed}, nil
}

// clockSeed folds the Unix time into [1, rng.MaxSeed].
func clockSeed(now time.Time) int64 {
	return 1 + now.Unix()%rng.MaxSeed
}

func applyPositional(pos []string, cfg *generator.Config, seed *int64) error {
	switch len(pos) {
	case 0:
		return nil
	case 4:
	default:
		return fmt.Errorf("ожидается: <type> <jobs> <machines> <seed> (получено %d аргументов)", len(pos))
	}

	jobs, err := atoiStrict(pos[1])
	if err != nil {
		return fmt.Errorf("количество работ %q: %w", pos[1], err)
	}
	machines, err := atoiStrict(pos[2])
	if err != nil {
		return fmt.Errorf("количество станков %q: %w", pos[2], err)
	}
	s, err := strconv.ParseInt(strings.TrimSpace(pos[3]), 10, 64)
	if err != nil {
		return fmt.Errorf("сид %q: %w", pos[3], err)
	}

	cfg.Strategy = generator.Strategy(pos[0])
	cfg.Jobs = jobs
	cfg.Machines = machines
	*seed = s
	return nil
}

func atoiStrict(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}

func strategyList() string {
	names := make([]string, 0, 5)
	for _, st := range generator.Strategies() {
		names = append(names, string(st))
	}
	return strings.Join(names, ", ")
}
