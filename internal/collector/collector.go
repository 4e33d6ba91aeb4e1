// Package collector fans out over every inventory source and
// assembles the snapshot. Sources are independent: one failing reading
// lands in its own error slot without touching the rest.
package collector

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"ferrix-agent/internal/config"
	"ferrix-agent/internal/dmi"
	"ferrix-agent/internal/helper"
	"ferrix-agent/internal/model"
	"ferrix-agent/internal/proc"
	"ferrix-agent/internal/software"
	"ferrix-agent/internal/sysfs"
	"ferrix-agent/internal/systemd"
)

type Collector struct {
	cfg    config.Config
	logger *slog.Logger
}

func New(cfg config.Config, logger *slog.Logger) *Collector {
	return &Collector{cfg: cfg, logger: logger}
}

// Collect gathers every section concurrently. The returned inventory
// is always usable; sections that failed carry their error string.
func (c *Collector) Collect(ctx context.Context) model.Inventory {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.CollectTimeout)
	defer cancel()

	inv := model.Inventory{CollectedAt: time.Now().UTC()}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		inv.Processors = model.Wrap(proc.ReadCPUInfo())
		return nil
	})
	g.Go(func() error {
		inv.Stat = model.Wrap(proc.ReadStat())
		return nil
	})
	g.Go(func() error {
		inv.Vulnerabilities = model.Wrap(sysfs.ReadVulnerabilities())
		return nil
	})
	g.Go(func() error {
		inv.CPUFreq = model.Wrap(sysfs.ReadCPUFreq())
		return nil
	})
	g.Go(func() error {
		inv.Memory = model.Wrap(proc.ReadMemInfo())
		return nil
	})
	g.Go(func() error {
		inv.Swaps = model.Wrap(proc.ReadSwaps())
		return nil
	})
	g.Go(func() error {
		inv.VMStat = model.Wrap(proc.ReadVMStat())
		return nil
	})
	g.Go(func() error {
		inv.Partitions = model.Wrap(proc.ReadPartitions())
		return nil
	})
	g.Go(func() error {
		inv.DMI = model.Wrap(c.collectDMI(ctx))
		return nil
	})
	g.Go(func() error {
		inv.Battery = model.Wrap(sysfs.ReadBatteries())
		return nil
	})
	g.Go(func() error {
		inv.Video = model.Wrap(sysfs.ReadVideo())
		return nil
	})
	g.Go(func() error {
		inv.Distro = model.Wrap(proc.ReadOSRelease())
		return nil
	})
	g.Go(func() error {
		inv.Kernel = model.Wrap(proc.ReadKernel())
		return nil
	})
	g.Go(func() error {
		inv.KMods = model.Wrap(c.collectModules(ctx))
		return nil
	})
	g.Go(func() error {
		inv.Users = model.Wrap(proc.ReadUsers())
		return nil
	})
	g.Go(func() error {
		inv.Groups = model.Wrap(proc.ReadGroups())
		return nil
	})
	g.Go(func() error {
		inv.Systemd = model.Wrap(systemd.ListUnits(ctx, c.cfg.DBusBus))
		return nil
	})
	g.Go(func() error {
		inv.Pkgs = model.Wrap(software.ListPackages(ctx))
		return nil
	})
	g.Go(func() error {
		inv.Host = model.Wrap(proc.ReadHost())
		return nil
	})

	// Closures never return errors, so Wait only observes ctx.
	_ = g.Wait()

	c.logSectionErrors(inv)
	return inv
}

// collectDMI reads the SMBIOS table directly and falls back to the
// privileged helper when the direct read is denied and a helper is
// configured.
func (c *Collector) collectDMI(ctx context.Context) (model.DMITable, error) {
	table, err := dmi.Read()
	if err == nil {
		return table, nil
	}
	if c.cfg.HelperPath != "" && errors.Is(err, os.ErrPermission) {
		c.logger.Debug("direct smbios read denied, using helper", "helper", c.cfg.HelperPath)
		return helper.ReadDMI(ctx, c.cfg.HelperPath)
	}
	return model.DMITable{}, err
}

// collectModules prefers the direct /proc read; the helper path covers
// kernels with restricted /proc/modules.
func (c *Collector) collectModules(ctx context.Context) (model.KernelModules, error) {
	mods, err := proc.ReadKernelModules()
	if err == nil {
		return mods, nil
	}
	if c.cfg.HelperPath != "" && errors.Is(err, os.ErrPermission) {
		return helper.ReadKernelModules(ctx, c.cfg.HelperPath)
	}
	return model.KernelModules{}, err
}

func (c *Collector) logSectionErrors(inv model.Inventory) {
	report := func(name, errStr string) {
		if errStr != "" {
			c.logger.Warn("section failed", "section", name, "error", errStr)
		}
	}
	report("processors", inv.Processors.Error)
	report("proc_stat", inv.Stat.Error)
	report("cpu_vulnerabilities", inv.Vulnerabilities.Error)
	report("cpu_freq", inv.CPUFreq.Error)
	report("memory_ram", inv.Memory.Error)
	report("memory_swaps", inv.Swaps.Error)
	report("vmstat", inv.VMStat.Error)
	report("storage", inv.Partitions.Error)
	report("dmi", inv.DMI.Error)
	report("battery", inv.Battery.Error)
	report("video", inv.Video.Error)
	report("distro", inv.Distro.Error)
	report("kernel", inv.Kernel.Error)
	report("kmods", inv.KMods.Error)
	report("users", inv.Users.Error)
	report("groups", inv.Groups.Error)
	report("systemd", inv.Systemd.Error)
	report("installed_pkgs", inv.Pkgs.Error)
	report("system", inv.Host.Error)
}
