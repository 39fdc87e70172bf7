// Package configloader 负责加载 bootstrap 配置并归一化为强类型结构，
// 供各二进制入口与 Wire 依赖图使用。
package configloader

import (
	"flag"
	"fmt"
	"net"
	"os"
	"path/filepath"

	"github.com/bionicotaku/lingo-services-greeter/internal/infrastructure/logger"

	"github.com/go-kratos/kratos/v2/config"
	"github.com/go-kratos/kratos/v2/config/file"
	"github.com/joho/godotenv"
)

// Params 包含构造配置 Bundle 所需的运行时输入参数。
type Params struct {
	ConfPath string // 配置文件路径（可为空，使用默认值）
	Name     string // 二进制通过 ldflags 注入的服务名
	Version  string // 二进制通过 ldflags 注入的版本号
}

// ServiceMetadata 保存服务标识信息，供日志和可观测性组件使用。
type ServiceMetadata struct {
	Name        string
	Version     string
	Environment string
	InstanceID  string
}

// LoggerConfig 将服务元信息转换为 logger.Config。
func (m ServiceMetadata) LoggerConfig() logger.Config {
	return logger.Config{
		Service: m.Name,
		Version: m.Version,
		HostID:  m.InstanceID,
		Env:     m.Environment,
	}
}

// Bundle 聚合归一化配置与服务元信息。
type Bundle struct {
	Runtime *RuntimeConfig
	Service ServiceMetadata
}

// BuildError 捕获配置构建过程中的上下文错误信息。
type BuildError struct {
	Stage string
	Path  string
	Err   error
}

// Error 实现 error 接口，提供包含上下文的错误信息。
func (e BuildError) Error() string {
	if e.Stage == "" {
		return e.Err.Error()
	}
	if e.Path != "" {
		return fmt.Sprintf("config %s at %q: %v", e.Stage, e.Path, e.Err)
	}
	return fmt.Sprintf("config %s: %v", e.Stage, e.Err)
}

// Unwrap 暴露底层错误，支持 errors.Is/As 链式查询。
func (e BuildError) Unwrap() error {
	return e.Err
}

// ParseConfPath 注册并解析 -conf 标志，返回解析后的配置路径。
func ParseConfPath(fs *flag.FlagSet, args []string) (string, error) {
	confPath := fs.String("conf", "", "config path or directory, eg: -conf configs/config.yaml")
	if err := fs.Parse(args); err != nil {
		return "", err
	}
	return *confPath, nil
}

// Load 从 bootstrap 配置文件构建 Bundle。
//
// 流程：
// 1. 解析配置路径（应用回退规则）并加载 .env 文件
// 2. 加载 YAML 并扫描到 raw 结构
// 3. 应用环境变量覆盖（DATABASE_URL、PORT 等）
// 4. 归一化为 RuntimeConfig 并校验
// 5. 推导服务元信息
func Load(params Params) (*Bundle, error) {
	confPath := ResolveConfPath(params.ConfPath)
	loadEnvFiles(confPath)

	raw, err := loadRaw(confPath)
	if err != nil {
		return nil, err
	}
	applyEnvOverrides(raw)

	runtime, err := normalize(raw)
	if err != nil {
		return nil, BuildError{Stage: "normalize", Path: confPath, Err: err}
	}
	if err := validate(runtime); err != nil {
		return nil, BuildError{Stage: "validate", Path: confPath, Err: err}
	}

	return &Bundle{
		Runtime: runtime,
		Service: buildServiceMetadata(params),
	}, nil
}

// ResolveConfPath 应用回退规则确定要加载的配置目录/文件路径。
// 优先级：显式传入路径 > CONF_PATH 环境变量 > 默认路径。
func ResolveConfPath(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if env := os.Getenv(envConfPath); env != "" {
		return env
	}
	return defaultConfPath
}

func loadRaw(confPath string) (*rawBootstrap, error) {
	c := config.New(config.WithSource(file.NewSource(confPath)))
	if err := c.Load(); err != nil {
		return nil, BuildError{Stage: "load", Path: confPath, Err: err}
	}
	defer c.Close()

	var raw rawBootstrap
	if err := c.Scan(&raw); err != nil {
		return nil, BuildError{Stage: "scan", Path: confPath, Err: err}
	}
	return &raw, nil
}

// applyEnvOverrides 应用环境变量覆盖配置文件中的特定字段。
//
// 支持的环境变量：
//   - DATABASE_URL: 覆盖 data.postgres.dsn
//   - PORT: 覆盖 server.http.addr 的端口部分（保留 host）
func applyEnvOverrides(raw *rawBootstrap) {
	if raw == nil {
		return
	}
	if dsn := os.Getenv(envDatabaseURL); dsn != "" {
		raw.Data.Postgres.DSN = dsn
	}
	if port := os.Getenv(envPort); port != "" {
		raw.Server.HTTP.Addr = replacePort(raw.Server.HTTP.Addr, port)
	}
}

// buildServiceMetadata 构建服务元信息。
// 优先级：ldflags 注入值 > 环境变量 > 默认值。
func buildServiceMetadata(params Params) ServiceMetadata {
	name := params.Name
	if name == "" {
		name = os.Getenv(envServiceName)
	}
	if name == "" {
		name = defaultServiceName
	}

	version := params.Version
	if version == "" {
		version = os.Getenv(envServiceVersion)
	}
	if version == "" {
		version = defaultServiceVersion
	}

	env := os.Getenv(envAppEnv)
	if env == "" {
		env = defaultEnvironment
	}

	host, _ := os.Hostname()

	return ServiceMetadata{
		Name:        name,
		Version:     version,
		Environment: env,
		InstanceID:  host,
	}
}

// loadEnvFiles best-effort 加载配置相关的 .env 文件，失败时忽略以保持幂等。
func loadEnvFiles(confPath string) {
	files := envFileCandidates(confPath)
	if len(files) == 0 {
		return
	}
	_ = godotenv.Load(files...)
}

// envFileCandidates 搜索并返回所有可用的 .env 文件路径。
// 搜索目录按优先级为 confPath 所在目录、当前工作目录；
// 同一目录内 .env.local 优先于 .env。仅返回实际存在的文件。
func envFileCandidates(confPath string) []string {
	dirs := orderedDirs(confPath)
	seen := make(map[string]struct{})
	var files []string
	for _, dir := range dirs {
		for _, name := range envFileNames {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err != nil {
				continue
			}
			if _, ok := seen[candidate]; ok {
				continue
			}
			files = append(files, candidate)
			seen[candidate] = struct{}{}
		}
	}
	return files
}

// orderedDirs 按优先级返回用于搜索 .env 文件的目录列表，已去重。
func orderedDirs(confPath string) []string {
	var dirs []string
	appendUnique := func(path string) {
		if path == "" {
			return
		}
		clean := filepath.Clean(path)
		for _, existing := range dirs {
			if existing == clean {
				return
			}
		}
		dirs = append(dirs, clean)
	}

	if confPath != "" {
		if info, err := os.Stat(confPath); err == nil {
			if info.IsDir() {
				appendUnique(confPath)
			} else {
				appendUnique(filepath.Dir(confPath))
			}
		}
	}

	if cwd, err := os.Getwd(); err == nil {
		appendUnique(cwd)
	}

	return dirs
}

// replacePort 替换地址中的端口部分，保留 host。
// 支持格式：
//   - "0.0.0.0:8000" -> "0.0.0.0:8080"
//   - ":8000" -> ":8080"
//   - "[::1]:8000" -> "[::1]:8080"
func replacePort(addr, newPort string) string {
	if addr == "" {
		return "0.0.0.0:" + newPort
	}

	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		// 解析失败，可能是只有端口或格式错误，回退到通配 host。
		return "0.0.0.0:" + newPort
	}

	return net.JoinHostPort(host, newPort)
}
