package bootstrap

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	log "github.com/sirupsen/logrus"

	"github.com/Goden-Gun/mt4-retcode/pkg/codes"
	"github.com/Goden-Gun/mt4-retcode/pkg/config"
	"github.com/Goden-Gun/mt4-retcode/pkg/logger"
)

// LoggerOptions 日志初始化选项
type LoggerOptions struct {
	// ServiceName 服务名称，用于日志文件命名
	ServiceName string
	// AddContainerHook 是否添加容器ID钩子
	AddContainerHook bool
	// Resolver 非空时安装返回码钩子，为带 ret_code 的日志补充 ret_symbol / ret_msg
	Resolver *codes.Resolver
}

// containerHook 添加容器ID到日志
type containerHook struct {
	containerID string
}

func (h *containerHook) Levels() []log.Level {
	return log.AllLevels
}

func (h *containerHook) Fire(entry *log.Entry) error {
	entry.Data["container_id"] = h.containerID
	return nil
}

// detectContainerID 检测容器ID
func detectContainerID() string {
	if hostname, err := os.Hostname(); err == nil && hostname != "" {
		return hostname
	}
	if data, err := os.ReadFile("/etc/hostname"); err == nil {
		if hostname := strings.TrimSpace(string(data)); hostname != "" {
			return hostname
		}
	}
	return "unknown"
}

// InitLogger 初始化日志，仅设置格式和级别
func InitLogger(cfg config.LogConfig) error {
	return InitLoggerWithOptions(cfg, LoggerOptions{})
}

// InitLoggerWithOptions 使用完整选项初始化日志，cfg.File.Enabled 时同时输出到滚动文件
func InitLoggerWithOptions(cfg config.LogConfig, opts LoggerOptions) error {
	l := log.StandardLogger()

	switch cfg.Format {
	case "text":
		l.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	default:
		l.SetFormatter(&log.JSONFormatter{})
	}

	if lvl, err := log.ParseLevel(cfg.Level); err == nil {
		l.SetLevel(lvl)
	} else {
		l.SetLevel(log.InfoLevel)
		l.Warnf("invalid log level %q, fallback to info", cfg.Level)
	}

	l.SetReportCaller(cfg.ReportCaller)

	if cfg.File.Enabled {
		writer, err := newRotateWriter(cfg.File, opts.ServiceName)
		if err != nil {
			return err
		}
		l.SetOutput(io.MultiWriter(os.Stdout, writer))
	}

	hooks := make(log.LevelHooks)
	if opts.AddContainerHook {
		hooks.Add(&containerHook{containerID: detectContainerID()})
	}
	if opts.Resolver != nil {
		hooks.Add(logger.NewRetcodeHook(opts.Resolver))
	}
	// 重复初始化时替换钩子，避免叠加
	l.ReplaceHooks(hooks)

	return nil
}

// newRotateWriter 创建按天滚动的日志文件
func newRotateWriter(fileCfg config.LogFileConfig, serviceName string) (io.Writer, error) {
	logDir := fileCfg.Dir
	if logDir == "" {
		logDir = "./logs"
	}
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		log.Errorf("创建日志目录失败: %v", err)
		return nil, err
	}

	filename := fileCfg.Filename
	if filename == "" {
		filename = serviceName
	}
	if filename == "" {
		filename = "mt4-retcode"
	}

	maxAge := fileCfg.MaxAgeDays
	if maxAge <= 0 {
		maxAge = 7
	}
	rotationDays := fileCfg.RotationDays
	if rotationDays <= 0 {
		rotationDays = 1
	}

	writer, err := rotatelogs.New(
		filepath.Join(logDir, filename+".%Y%m%d.log"),
		rotatelogs.WithLinkName(filepath.Join(logDir, filename+".log")),
		rotatelogs.WithMaxAge(time.Duration(maxAge)*24*time.Hour),
		rotatelogs.WithRotationTime(time.Duration(rotationDays)*24*time.Hour),
	)
	if err != nil {
		log.Errorf("设置日志输出失败: %v", err)
		return nil, err
	}
	return writer, nil
}
