// Package sites implementa a resolução de configuração por domínio.
// O mapa hostname → site é carregado uma única vez na subida do processo
// e tratado como constante imutável; a resolução em si é uma função pura
// com fallback total para o site padrão, segura para uso por requisição.
package sites

import (
	"fmt"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
)

// Site é o registro de configuração de um domínio atendido pela plataforma.
type Site struct {
	SiteName     string `yaml:"site_name" json:"siteName"`
	CanonicalURL string `yaml:"canonical_url" json:"canonicalUrl"`
	Title        string `yaml:"title" json:"title"`
	PrimaryColor string `yaml:"primary_color" json:"primaryColor"`
}

// Resolver resolve o hostname de uma requisição para o registro do site.
// Hostnames desconhecidos nunca resultam em erro: o site padrão é devolvido.
type Resolver struct {
	domains     map[string]Site
	defaultSite Site
}

type sitesFile struct {
	Default Site            `yaml:"default"`
	Domains map[string]Site `yaml:"domains"`
}

// Load lê o arquivo YAML de sites e constrói o Resolver.
func Load(path string) (*Resolver, error) {
	const op = "sites.Load"
	var file sitesFile
	if err := cleanenv.ReadConfig(path, &file); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return New(file.Domains, file.Default), nil
}

// New constrói um Resolver a partir de um mapa já montado. As chaves são
// normalizadas em minúsculas na construção, nunca por requisição.
func New(domains map[string]Site, defaultSite Site) *Resolver {
	normalized := make(map[string]Site, len(domains))
	for host, site := range domains {
		normalized[strings.ToLower(host)] = site
	}
	return &Resolver{
		domains:     normalized,
		defaultSite: defaultSite,
	}
}

// Resolve devolve o registro do site para o hostname informado.
// Remove o sufixo de porta, normaliza para minúsculas e, na ausência de
// correspondência exata, devolve o site padrão. Nunca falha.
func (r *Resolver) Resolve(host string) (string, Site) {
	host = strings.ToLower(strings.TrimSpace(host))
	if i := strings.LastIndex(host, ":"); i != -1 && !strings.Contains(host[i:], "]") {
		host = host[:i]
	}
	if site, ok := r.domains[host]; ok {
		return host, site
	}
	return host, r.defaultSite
}

// Default devolve o registro do site padrão.
func (r *Resolver) Default() Site {
	return r.defaultSite
}
