package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	glog "github.com/cloudwego/hertz/pkg/common/hlog"
	hertzadapter "github.com/hertz-contrib/logger/zerolog"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"resume-match-go/internal/api/handler"
	"resume-match-go/internal/api/router"
	"resume-match-go/internal/config"
	appCoreLogger "resume-match-go/internal/logger"
	"resume-match-go/internal/nlp"
	"resume-match-go/internal/parser"
	"resume-match-go/internal/report"
	"resume-match-go/internal/scoring"
)

func main() {
	var configPath string
	var initConfigPath string
	pflag.StringVarP(&configPath, "config", "c", "", "Path to config file")
	pflag.StringVar(&initConfigPath, "init-config", "", "Write a sample config file to the given path and exit")
	pflag.Parse()

	if initConfigPath != "" {
		if err := config.CreateSampleConfig(initConfigPath); err != nil {
			log.Fatalf("生成示例配置失败: %v", err)
		}
		return
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	initLogger(cfg)
	glog.Info("配置加载成功")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// NLP引擎在进程启动时加载一次，之后只读共享
	// 加载失败不中断启动：所有依赖NLP的输出按约定降级为空/缺失
	var engine scoring.Engine
	if cfg.NLP.Disabled {
		glog.Warn("NLP能力已在配置中关闭，关键词与相似度输出将降级为空")
	} else if e, err := nlp.NewEngine(); err != nil {
		glog.Warnf("NLP引擎初始化失败，相关评分将降级: %v", err)
	} else {
		engine = e
		glog.Info("NLP引擎初始化成功")
	}

	// 文档读取器：PDF为兜底，DOCX按扩展名路由
	pdfReader, err := parser.NewPDFReader(ctx,
		parser.WithPDFLogger(log.New(appCoreLogger.Logger, "[PDF读取器] ", log.LstdFlags)))
	if err != nil {
		glog.Fatalf("创建PDF读取器失败: %v", err)
	}
	readers := parser.NewReaderSet(pdfReader)
	readers.Register(".docx", parser.NewDocxReader())
	glog.Info("文档读取器初始化成功")

	fieldExtractor := parser.NewFieldExtractor(readers)
	comparator := scoring.NewComparator(engine, scoring.WithMinLemmaLength(cfg.NLP.MinLemmaLength))
	reporter := report.NewGenerator(cfg.Report)

	resumeHandler := handler.NewResumeHandler(cfg, fieldExtractor, comparator, reporter)
	glog.Info("ResumeHandler初始化成功")

	h := server.New(
		server.WithHostPorts(cfg.Server.Address),
		server.WithHandleMethodNotAllowed(true),
		server.WithMaxRequestBodySize((cfg.Upload.MaxFileSizeMB+1)*1024*1024),
	)
	h.Use(func(c context.Context, ctx *app.RequestContext) {
		glog.CtxInfof(c, "Request: %s %s", string(ctx.Method()), string(ctx.Path()))
		ctx.Next(c)
		glog.CtxInfof(c, "Response: status %d", ctx.Response.StatusCode())
	})

	router.RegisterRoutes(h, resumeHandler)
	glog.Info("HTTP路由注册成功")

	glog.Infof("HTTP 服务器启动中，监听地址: %s", cfg.Server.Address)
	go func() {
		if err := h.Run(); err != nil {
			glog.Fatalf("启动HTTP服务器失败: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	glog.Info("接收到终止信号，正在优雅退出...")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := h.Shutdown(shutdownCtx); err != nil {
		glog.Fatalf("服务器关闭失败: %v", err)
	}
	glog.Info("优雅退出完成")
}

// initLogger 初始化zerolog全局日志，并把Hertz的glog桥接到同一个输出
func initLogger(cfg *config.Config) {
	appCoreLogger.Init(appCoreLogger.Config{
		Level:        cfg.Logger.Level,
		Format:       cfg.Logger.Format,
		TimeFormat:   cfg.Logger.TimeFormat,
		ReportCaller: cfg.Logger.ReportCaller,
	})
	hertzCompatibleLogger := hertzadapter.From(appCoreLogger.Logger)
	glog.SetLogger(hertzCompatibleLogger)

	if level, err := zerolog.ParseLevel(cfg.Logger.Level); err == nil {
		switch level {
		case zerolog.DebugLevel:
			glog.SetLevel(glog.LevelDebug)
		case zerolog.WarnLevel:
			glog.SetLevel(glog.LevelWarn)
		case zerolog.ErrorLevel:
			glog.SetLevel(glog.LevelError)
		default:
			glog.SetLevel(glog.LevelInfo)
		}
	}
}
