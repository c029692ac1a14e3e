/*
Token contract is a multi-asset fungible value ledger with balance locking.

Every asset is registered by the contract owner with an issuer account, a
supply cap and a symbol precision. The issuer controls issuance, retirement
and per-asset configuration: the unlock delay and the (inert) transfer fee
fields. Fee configuration is stored and readable but no operation of this
contract deducts a fee.

Each (holder, asset) pair owns a balance record {balance, locked}. Only the
unlocked portion, balance - locked, is spendable by transfer and retire.
A holder locks funds with Lock, later files a single in-flight unlock request
with RequestUnlock and, once the asset's unlock delay has passed, claims it
back with Claim. Filing a request changes nothing but the request table:
funds stay locked for the entire waiting period, and only a claim moves the
locked amount back into the spendable portion. CancelUnlock abandons a
pending request without touching any balances.

Alongside the balance records the contract maintains an asset-scoped lock
cache, enumerable with LockedAccounts, and a per-asset total of all locked
amounts. Both are updated in the same step as the balance record they mirror.

Contract notifications

Transfer notification. Produced on every successful transfer.

  Transfer:
    - name: code
      type: String
    - name: from
      type: Hash160
    - name: to
      type: Hash160
    - name: amount
      type: Integer

Issue notification. Produced when the circulating supply is increased.

  Issue:
    - name: code
      type: String
    - name: amount
      type: Integer

Retire notification. Produced when the circulating supply is decreased.

  Retire:
    - name: code
      type: String
    - name: amount
      type: Integer

Lock notification. Produced when a holder locks a portion of the balance.

  Lock:
    - name: code
      type: String
    - name: owner
      type: Hash160
    - name: amount
      type: Integer

Unlock notification. Produced when a matured unlock request is claimed.

  Unlock:
    - name: code
      type: String
    - name: owner
      type: Hash160
    - name: amount
      type: Integer
*/
package token
