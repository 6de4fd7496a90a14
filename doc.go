/*

This repo implements an offline PKI and NATS credential bootstrap tool
for a small organization.

From a single human-chosen master passphrase plus an organization
identifier, keyforge deterministically reproduces a complete hierarchy of
cryptographic material: a Root CA, signing-only Intermediate CAs, server
and user leaf certificates, per-person SSH and PGP keys, optional
hardware-token (PIV) provisioning, and a NATS Operator/Account/User JWT
hierarchy — together with a content-addressed export bundle suitable for
encrypted transport to production infrastructure.

PROJECT HOME

See our GitHub repo (https://github.com/lockwell/keyforge) for the
latest code, to file an issue or submit improvements for review and
potential inclusion into the project.

PURPOSE

Reproducible, offline cryptographic bootstrap: the same passphrase and
organization id always rebuild the same keys, certificates, and
credentials on any machine, with no network access and no persisted
secret beyond what the operator already holds in their head.

FEATURES

• Deterministic master-seed and child-seed derivation (Argon2id + HKDF-SHA256)
  with strict per-label domain separation and guaranteed secret erasure.

• A Root CA / Intermediate CA / leaf certificate hierarchy with a hard
  pathlen:0 constraint on every Intermediate CA.

• Per-person SSH and OpenPGP keypairs, generated deterministically from
  the same master seed.

• Optional PIV hardware-token slot provisioning (Authentication,
  DigitalSignature, KeyManagement, CardAuthentication).

• A NATS Operator/Account/User JWT hierarchy projected from an
  organization's units and people, with proper issuer chains.

• A content-addressed (CIDv1) export manifest that lets a bundle be
  verified for integrity without any secret material.

USAGE - keyforge CLI

    keyforge derives a reproducible hierarchy of PKI certificates and
    NATS operator/account/user identities from a single passphrase, so that
    an entire organization's credential material can be regenerated
    byte-for-byte on any host from the passphrase alone.

    Usage:
      keyforge [command]

    Available Commands:
      completion              Generate the autocompletion script for the specified shell
      derive-master           Derive and record the organization's master seed
      export                  Write the content-addressed export manifest over all generated artifacts
      generate-intermediate   Generate a signing-only Intermediate CA
      generate-nats-hierarchy Generate NATS Operator, Account, and User identities
      generate-person-keys    Generate a person's SSH and PGP keypairs, optionally provisioning a PIV slot
      generate-root-ca        Generate the organization's self-signed Root CA
      generate-server-cert    Issue a leaf server certificate under an Intermediate CA
      help                    Help about any command

    Flags:
      -h, --help                help for keyforge
          --org-id string       organization UUID the master seed is bound to (required)
          --passphrase string   master passphrase (omit to be prompted interactively)

    Use "keyforge [command] --help" for more information about a command.

*/
package main
